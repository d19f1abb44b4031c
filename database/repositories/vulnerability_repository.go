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

type vulnerabilityRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Vulnerability]
}

func NewVulnerabilityRepository(db *gorm.DB) *vulnerabilityRepository {
	return &vulnerabilityRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Vulnerability](db, "vulnerability"),
	}
}

// Update saves the row only, preloaded associations stay untouched.
func (g *vulnerabilityRepository) Update(tx *gorm.DB, m *models.Vulnerability) error {
	err := g.GetDB(tx).Omit(clause.Associations).Save(m).Error
	return shared.TranslateDatabaseError("vulnerability", err)
}

func (g *vulnerabilityRepository) Read(id uuid.UUID) (models.Vulnerability, error) {
	var vulnerability models.Vulnerability
	err := g.db.Preload("CategoryOfTesting").First(&vulnerability, "id = ?", id).Error
	return vulnerability, shared.TranslateDatabaseError("vulnerability", err)
}

func (g *vulnerabilityRepository) applyFilter(q *gorm.DB, category *string, name *string) *gorm.DB {
	if category != nil {
		q = q.Joins("JOIN assessment_types ON assessment_types.id = vulnerabilities.category_of_testing_id").
			Where("assessment_types.name = ?", *category)
	}
	if name != nil {
		q = q.Where("vulnerabilities.name ILIKE ?", "%"+*name+"%")
	}
	return q
}

// FindAllPaged lists vulnerabilities, filtered by exact category name and
// case-insensitive name substring.
func (g *vulnerabilityRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo, category *string, name *string) (shared.Paged[models.Vulnerability], error) {
	var count int64
	var vulnerabilities = []models.Vulnerability{}

	q := g.applyFilter(g.GetDB(tx).Model(&models.Vulnerability{}), category, name)
	q.Count(&count)

	q = g.applyFilter(pageInfo.ApplyOnDB(g.GetDB(tx)).Model(&models.Vulnerability{}), category, name).
		Preload("CategoryOfTesting")

	err := q.Order("vulnerabilities.name asc").Find(&vulnerabilities).Error
	if err != nil {
		return shared.Paged[models.Vulnerability]{}, shared.TranslateDatabaseError("vulnerability", err)
	}

	return shared.NewPaged(pageInfo, count, vulnerabilities), nil
}

// DeleteAndDetachFindings removes the vulnerability while keeping its
// findings. Their vulnerability reference is cleared, the CVSS snapshot and
// url linkage stay untouched.
func (g *vulnerabilityRepository) DeleteAndDetachFindings(id uuid.UUID) error {
	return g.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Finding{}).Where("vulnerability_id = ?", id).Update("vulnerability_id", nil).Error; err != nil {
			return shared.TranslateDatabaseError("finding", err)
		}
		return shared.TranslateDatabaseError("vulnerability", tx.Delete(&models.Vulnerability{}, "id = ?", id).Error)
	})
}
