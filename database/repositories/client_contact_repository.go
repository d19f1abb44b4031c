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

type clientContactRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ClientContact]
}

func NewClientContactRepository(db *gorm.DB) *clientContactRepository {
	return &clientContactRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ClientContact](db, "client contact"),
	}
}

// FindAllPaged lists contacts, optionally scoped to one client. Without the
// scope it returns contacts across all clients.
func (g *clientContactRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo, clientID *uuid.UUID) (shared.Paged[models.ClientContact], error) {
	var count int64
	var contacts = []models.ClientContact{}

	q := g.GetDB(tx).Model(&models.ClientContact{})
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	q.Count(&count)

	q = pageInfo.ApplyOnDB(g.GetDB(tx))
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}

	err := q.Order("created_at desc").Find(&contacts).Error
	if err != nil {
		return shared.Paged[models.ClientContact]{}, shared.TranslateDatabaseError("client contact", err)
	}

	return shared.NewPaged(pageInfo, count, contacts), nil
}
