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

type findingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Finding]
}

func NewFindingRepository(db *gorm.DB) *findingRepository {
	return &findingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Finding](db, "finding"),
	}
}

// Update saves the finding row only, the preloaded associations stay
// untouched.
func (g *findingRepository) Update(tx *gorm.DB, finding *models.Finding) error {
	err := g.GetDB(tx).Omit(clause.Associations).Save(finding).Error
	return shared.TranslateDatabaseError("finding", err)
}

func (g *findingRepository) Read(id uuid.UUID) (models.Finding, error) {
	var finding models.Finding
	err := g.db.Preload("Vulnerability").Preload("Vulnerability.CategoryOfTesting").Preload("URLAssignment").
		First(&finding, "id = ?", id).Error
	return finding, shared.TranslateDatabaseError("finding", err)
}

// FindAllPaged lists findings, optionally scoped to one url assignment.
func (g *findingRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo, urlAssignmentID *uuid.UUID) (shared.Paged[models.Finding], error) {
	var count int64
	var findings = []models.Finding{}

	q := g.GetDB(tx).Model(&models.Finding{})
	if urlAssignmentID != nil {
		q = q.Where("url_assignment_id = ?", *urlAssignmentID)
	}
	q.Count(&count)

	q = pageInfo.ApplyOnDB(g.GetDB(tx)).
		Preload("Vulnerability").Preload("Vulnerability.CategoryOfTesting").Preload("URLAssignment")
	if urlAssignmentID != nil {
		q = q.Where("url_assignment_id = ?", *urlAssignmentID)
	}

	err := q.Order("created_at desc").Find(&findings).Error
	if err != nil {
		return shared.Paged[models.Finding]{}, shared.TranslateDatabaseError("finding", err)
	}

	return shared.NewPaged(pageInfo, count, findings), nil
}
