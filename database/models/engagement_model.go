package models

import (
	"time"

	"github.com/google/uuid"
)

// ClientAssessment pairs a client with one assessment type. It is the unit
// url assignments are grouped under and has to exist before any of them.
type ClientAssessment struct {
	Model
	ClientID         uuid.UUID      `json:"clientId" gorm:"type:uuid;uniqueIndex:idx_client_assessment;not null;"`
	Client           Client         `json:"client" gorm:"foreignKey:ClientID;references:ID;constraint:OnDelete:CASCADE;"`
	AssessmentTypeID uuid.UUID      `json:"assessmentTypeId" gorm:"type:uuid;uniqueIndex:idx_client_assessment;not null;"`
	AssessmentType   AssessmentType `json:"assessmentType" gorm:"foreignKey:AssessmentTypeID;references:ID;constraint:OnDelete:RESTRICT;"`
}

func (m ClientAssessment) TableName() string {
	return "client_assessments"
}

// URLAssignment is a single url's testing task within a client assessment.
// The lifecycle dates are independently nullable and settable in any order -
// the store enforces no ordering between them.
type URLAssignment struct {
	Model
	ClientAssessmentID uuid.UUID        `json:"clientAssessmentId" gorm:"type:uuid;not null;"`
	ClientAssessment   ClientAssessment `json:"clientAssessment" gorm:"foreignKey:ClientAssessmentID;references:ID;constraint:OnDelete:CASCADE;"`
	TargetURL          string           `json:"targetUrl" gorm:"type:text;not null;"`
	StartDate          *time.Time       `json:"startDate" gorm:"default:null;"`
	EndDate            *time.Time       `json:"endDate" gorm:"default:null;"`
	QADate             *time.Time       `json:"qaDate" gorm:"default:null;"`
	TesterID           *uuid.UUID       `json:"testerId" gorm:"type:uuid;default:null;"`
	Tester             *User            `json:"tester" gorm:"foreignKey:TesterID;references:ID;constraint:OnDelete:SET NULL;"`
	ComplianceTypeID   *uuid.UUID       `json:"complianceTypeId" gorm:"type:uuid;default:null;"`
	ComplianceType     *ComplianceType  `json:"complianceType" gorm:"foreignKey:ComplianceTypeID;references:ID;constraint:OnDelete:SET NULL;"`
	Completed          bool             `json:"completed" gorm:"default:false;not null;"`
}

func (m URLAssignment) TableName() string {
	return "url_assignments"
}
