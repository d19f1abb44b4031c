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
)

type clientAssessmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ClientAssessment]
}

func NewClientAssessmentRepository(db *gorm.DB) *clientAssessmentRepository {
	return &clientAssessmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ClientAssessment](db, "client assessment"),
	}
}

func (g *clientAssessmentRepository) Read(id uuid.UUID) (models.ClientAssessment, error) {
	var assessment models.ClientAssessment
	err := g.db.Preload("Client").Preload("AssessmentType").First(&assessment, "id = ?", id).Error
	return assessment, shared.TranslateDatabaseError("client assessment", err)
}

func (g *clientAssessmentRepository) applyFilter(q *gorm.DB, clientID *uuid.UUID, assessmentType *string) *gorm.DB {
	if clientID != nil {
		q = q.Where("client_assessments.client_id = ?", *clientID)
	}
	if assessmentType != nil {
		q = q.Joins("JOIN assessment_types ON assessment_types.id = client_assessments.assessment_type_id").
			Where("assessment_types.name = ?", *assessmentType)
	}
	return q
}

func (g *clientAssessmentRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo, clientID *uuid.UUID, assessmentType *string) (shared.Paged[models.ClientAssessment], error) {
	var count int64
	var assessments = []models.ClientAssessment{}

	q := g.applyFilter(g.GetDB(tx).Model(&models.ClientAssessment{}), clientID, assessmentType)
	q.Count(&count)

	q = g.applyFilter(pageInfo.ApplyOnDB(g.GetDB(tx)).Model(&models.ClientAssessment{}), clientID, assessmentType).
		Preload("Client").Preload("Client.Address").Preload("AssessmentType")

	err := q.Order("client_assessments.created_at desc").Find(&assessments).Error
	if err != nil {
		return shared.Paged[models.ClientAssessment]{}, shared.TranslateDatabaseError("client assessment", err)
	}

	return shared.NewPaged(pageInfo, count, assessments), nil
}
