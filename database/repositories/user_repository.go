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

type teamRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Team]
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Team](db, "team"),
	}
}

func (g *teamRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo) (shared.Paged[models.Team], error) {
	var count int64
	var teams = []models.Team{}

	g.GetDB(tx).Model(&models.Team{}).Count(&count)

	err := pageInfo.ApplyOnDB(g.GetDB(tx)).Order("name asc").Find(&teams).Error
	if err != nil {
		return shared.Paged[models.Team]{}, shared.TranslateDatabaseError("team", err)
	}

	return shared.NewPaged(pageInfo, count, teams), nil
}

type userRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.User]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.User](db, "user"),
	}
}

// Update saves the row only, preloaded associations stay untouched.
func (g *userRepository) Update(tx *gorm.DB, m *models.User) error {
	err := g.GetDB(tx).Omit(clause.Associations).Save(m).Error
	return shared.TranslateDatabaseError("user", err)
}

func (g *userRepository) Read(id uuid.UUID) (models.User, error) {
	var user models.User
	err := g.db.Preload("Team").First(&user, "id = ?", id).Error
	return user, shared.TranslateDatabaseError("user", err)
}

func (g *userRepository) ReadByEmail(email string) (models.User, error) {
	var user models.User
	err := g.db.Preload("Team").First(&user, "email = ?", email).Error
	return user, shared.TranslateDatabaseError("user", err)
}

func (g *userRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo) (shared.Paged[models.User], error) {
	var count int64
	var users = []models.User{}

	g.GetDB(tx).Model(&models.User{}).Count(&count)

	err := pageInfo.ApplyOnDB(g.GetDB(tx)).Preload("Team").Order("date_joined desc").Find(&users).Error
	if err != nil {
		return shared.Paged[models.User]{}, shared.TranslateDatabaseError("user", err)
	}

	return shared.NewPaged(pageInfo, count, users), nil
}
