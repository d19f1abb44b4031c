package models

import (
	"github.com/google/uuid"
)

// Finding is a vulnerability occurrence on a url assignment. The CVSS score
// is a snapshot taken at discovery time - it survives catalog changes and
// even deletion of the vulnerability it references.
type Finding struct {
	Model
	URLAssignmentID uuid.UUID      `json:"urlAssignmentId" gorm:"type:uuid;uniqueIndex:idx_finding_occurrence;not null;"`
	URLAssignment   URLAssignment  `json:"urlAssignment" gorm:"foreignKey:URLAssignmentID;references:ID;constraint:OnDelete:CASCADE;"`
	VulnerabilityID *uuid.UUID     `json:"vulnerabilityId" gorm:"type:uuid;uniqueIndex:idx_finding_occurrence;"`
	Vulnerability   *Vulnerability `json:"vulnerability" gorm:"foreignKey:VulnerabilityID;references:ID;constraint:OnDelete:SET NULL;"`
	CVSSScore       float64        `json:"cvssScore" gorm:"type:decimal(4,2);uniqueIndex:idx_finding_occurrence;not null;"`
}

func (m Finding) TableName() string {
	return "findings"
}
