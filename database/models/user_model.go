package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Team groups internal users.
type Team struct {
	Model
	Name string `json:"name" gorm:"type:text;uniqueIndex;not null;"`
}

func (m Team) TableName() string {
	return "teams"
}

// User is an internal employee account. Email is the login identifier and
// immutable after creation. The password is stored as a bcrypt hash, the
// plaintext is never persisted and the hash never serialized.
type User struct {
	Model
	Email          string     `json:"email" gorm:"type:text;uniqueIndex;not null;"`
	HashedPassword string     `json:"-" gorm:"type:text;not null;"`
	FirstName      string     `json:"firstName" gorm:"type:text;"`
	LastName       string     `json:"lastName" gorm:"type:text;"`
	ContactNumber  string     `json:"contactNumber" gorm:"type:text;"`
	Designation    string     `json:"designation" gorm:"type:text;"`
	TeamID         *uuid.UUID `json:"teamId" gorm:"type:uuid;default:null;"`
	Team           *Team      `json:"team" gorm:"foreignKey:TeamID;references:ID;constraint:OnDelete:SET NULL;"`
	IsStaff        bool       `json:"isStaff" gorm:"default:false;not null;"`
	IsActive       bool       `json:"isActive" gorm:"default:true;not null;"`
	DateJoined     time.Time  `json:"dateJoined" gorm:"not null;"`
}

func (m User) TableName() string {
	return "users"
}

// SetPassword replaces the stored hash with an irreversible hash of the
// given plaintext.
func (m *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.HashedPassword = string(hash)
	return nil
}

// CheckPassword compares the plaintext against the stored hash.
func (m *User) CheckPassword(plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(m.HashedPassword), []byte(plaintext))
}
