package models

import (
	"github.com/google/uuid"
)

// ClientAddress is owned by exactly one client. It is created and updated
// through the client paths only and deleted together with its owner.
type ClientAddress struct {
	Model
	Street     string `json:"street" gorm:"type:text;not null;"`
	City       string `json:"city" gorm:"type:text;not null;"`
	State      string `json:"state" gorm:"type:text;not null;"`
	PostalCode string `json:"postalCode" gorm:"type:text;not null;"`
	Country    string `json:"country" gorm:"type:text;not null;"`
}

func (m ClientAddress) TableName() string {
	return "client_addresses"
}

// Client is the customer organization under assessment.
type Client struct {
	Model
	Name      string          `json:"name" gorm:"type:text;not null;"`
	Email     string          `json:"email" gorm:"type:text;uniqueIndex;not null;"`
	PhoneCode string          `json:"phoneCode" gorm:"type:text;"`
	Phone     string          `json:"phone" gorm:"type:text;"`
	Profile   *string         `json:"profile" gorm:"type:text;"` // url of the uploaded company logo
	AddressID uuid.UUID       `json:"addressId" gorm:"type:uuid;uniqueIndex;not null;"`
	Address   ClientAddress   `json:"address" gorm:"foreignKey:AddressID;references:ID;"`
	Contacts  []ClientContact `json:"contacts" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m Client) TableName() string {
	return "clients"
}

// ClientContact is a contact person on the client side. The same email may
// exist for different clients but not twice for one client.
type ClientContact struct {
	Model
	Name        string    `json:"name" gorm:"type:text;not null;"`
	Email       string    `json:"email" gorm:"type:text;uniqueIndex:idx_client_contact_email;not null;"`
	Designation string    `json:"designation" gorm:"type:text;"`
	MobileCode  string    `json:"mobileCode" gorm:"type:text;"`
	Mobile      string    `json:"mobile" gorm:"type:text;"`
	ClientID    uuid.UUID `json:"clientId" gorm:"type:uuid;uniqueIndex:idx_client_contact_email;not null;"`
	Client      Client    `json:"-" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (m ClientContact) TableName() string {
	return "client_contacts"
}
