// Copyright (C) 2025 helixsec
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/google/uuid"
	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type urlAssignmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.URLAssignment]
}

func NewURLAssignmentRepository(db *gorm.DB) *urlAssignmentRepository {
	return &urlAssignmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.URLAssignment](db, "url assignment"),
	}
}

// Update saves the assignment row only, the preloaded associations stay
// untouched.
func (g *urlAssignmentRepository) Update(tx *gorm.DB, assignment *models.URLAssignment) error {
	err := g.GetDB(tx).Omit(clause.Associations).Save(assignment).Error
	return shared.TranslateDatabaseError("url assignment", err)
}

func (g *urlAssignmentRepository) preload(q *gorm.DB) *gorm.DB {
	return q.Preload("Tester").Preload("ComplianceType").
		Preload("ClientAssessment").Preload("ClientAssessment.Client").Preload("ClientAssessment.AssessmentType")
}

func (g *urlAssignmentRepository) Read(id uuid.UUID) (models.URLAssignment, error) {
	var assignment models.URLAssignment
	err := g.preload(g.db).First(&assignment, "id = ?", id).Error
	return assignment, shared.TranslateDatabaseError("url assignment", err)
}

// applyFilter scopes by client and assessment type name through the parent
// client assessment.
func (g *urlAssignmentRepository) applyFilter(q *gorm.DB, clientID *uuid.UUID, assessmentType *string) *gorm.DB {
	if clientID == nil && assessmentType == nil {
		return q
	}

	q = q.Joins("JOIN client_assessments ON client_assessments.id = url_assignments.client_assessment_id")
	if clientID != nil {
		q = q.Where("client_assessments.client_id = ?", *clientID)
	}
	if assessmentType != nil {
		q = q.Joins("JOIN assessment_types ON assessment_types.id = client_assessments.assessment_type_id").
			Where("assessment_types.name = ?", *assessmentType)
	}
	return q
}

func (g *urlAssignmentRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo, clientID *uuid.UUID, assessmentType *string) (shared.Paged[models.URLAssignment], error) {
	var count int64
	var assignments = []models.URLAssignment{}

	q := g.applyFilter(g.GetDB(tx).Model(&models.URLAssignment{}), clientID, assessmentType)
	q.Count(&count)

	q = g.preload(g.applyFilter(pageInfo.ApplyOnDB(g.GetDB(tx)).Model(&models.URLAssignment{}), clientID, assessmentType))

	err := q.Order("url_assignments.created_at desc").Find(&assignments).Error
	if err != nil {
		return shared.Paged[models.URLAssignment]{}, shared.TranslateDatabaseError("url assignment", err)
	}

	return shared.NewPaged(pageInfo, count, assignments), nil
}

// FindInProgressByTester returns the assignments that have completed their
// working phase: start, end and QA dates all set, a compliance framework
// assigned and the given user as tester.
func (g *urlAssignmentRepository) FindInProgressByTester(tx *gorm.DB, pageInfo shared.PageInfo, testerID uuid.UUID) (shared.Paged[models.URLAssignment], error) {
	var count int64
	var assignments = []models.URLAssignment{}

	inProgress := func(q *gorm.DB) *gorm.DB {
		return q.Where("start_date IS NOT NULL").
			Where("end_date IS NOT NULL").
			Where("qa_date IS NOT NULL").
			Where("compliance_type_id IS NOT NULL").
			Where("tester_id = ?", testerID)
	}

	inProgress(g.GetDB(tx).Model(&models.URLAssignment{})).Count(&count)

	q := g.preload(inProgress(pageInfo.ApplyOnDB(g.GetDB(tx)).Model(&models.URLAssignment{})))

	err := q.Order("url_assignments.created_at desc").Find(&assignments).Error
	if err != nil {
		return shared.Paged[models.URLAssignment]{}, shared.TranslateDatabaseError("url assignment", err)
	}

	return shared.NewPaged(pageInfo, count, assignments), nil
}
