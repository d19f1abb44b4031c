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

type assessmentTypeRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AssessmentType]
}

func NewAssessmentTypeRepository(db *gorm.DB) *assessmentTypeRepository {
	return &assessmentTypeRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AssessmentType](db, "assessment type"),
	}
}

func (g *assessmentTypeRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo) (shared.Paged[models.AssessmentType], error) {
	var count int64
	var types = []models.AssessmentType{}

	g.GetDB(tx).Model(&models.AssessmentType{}).Count(&count)

	err := pageInfo.ApplyOnDB(g.GetDB(tx)).Order("name asc").Find(&types).Error
	if err != nil {
		return shared.Paged[models.AssessmentType]{}, shared.TranslateDatabaseError("assessment type", err)
	}

	return shared.NewPaged(pageInfo, count, types), nil
}

type complianceTypeRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ComplianceType]
}

func NewComplianceTypeRepository(db *gorm.DB) *complianceTypeRepository {
	return &complianceTypeRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ComplianceType](db, "compliance type"),
	}
}

func (g *complianceTypeRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo) (shared.Paged[models.ComplianceType], error) {
	var count int64
	var types = []models.ComplianceType{}

	g.GetDB(tx).Model(&models.ComplianceType{}).Count(&count)

	err := pageInfo.ApplyOnDB(g.GetDB(tx)).Order("name asc").Find(&types).Error
	if err != nil {
		return shared.Paged[models.ComplianceType]{}, shared.TranslateDatabaseError("compliance type", err)
	}

	return shared.NewPaged(pageInfo, count, types), nil
}
