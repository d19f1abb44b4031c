package models

import (
	"github.com/google/uuid"
)

// AssessmentType is a category of security testing, e.g. "Web" or "Network".
type AssessmentType struct {
	Model
	Name string `json:"name" gorm:"type:text;uniqueIndex;not null;"`
}

func (m AssessmentType) TableName() string {
	return "assessment_types"
}

// ComplianceType is a regulatory framework a test is performed against.
type ComplianceType struct {
	Model
	Name string `json:"name" gorm:"type:text;uniqueIndex;not null;"`
}

func (m ComplianceType) TableName() string {
	return "compliance_types"
}

// Vulnerability is a catalog entry. Category deletion is restricted while
// vulnerabilities reference it, findings keep their snapshot when the
// vulnerability itself is deleted.
type Vulnerability struct {
	Model
	Name                string         `json:"name" gorm:"type:text;uniqueIndex;not null;"`
	Description         string         `json:"description" gorm:"type:text;"`
	Remediation         string         `json:"remediation" gorm:"type:text;"`
	Impact              string         `json:"impact" gorm:"type:text;"`
	Reference           string         `json:"reference" gorm:"type:text;"`
	CVSS                string         `json:"cvss" gorm:"type:text;"` // vector string, e.g. CVSS:3.1/AV:N/...
	CategoryOfTestingID uuid.UUID      `json:"categoryOfTestingId" gorm:"type:uuid;not null;"`
	CategoryOfTesting   AssessmentType `json:"categoryOfTesting" gorm:"foreignKey:CategoryOfTestingID;references:ID;constraint:OnDelete:RESTRICT;"`
}

func (m Vulnerability) TableName() string {
	return "vulnerabilities"
}
