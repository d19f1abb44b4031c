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

type clientRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Client]
}

func NewClientRepository(db *gorm.DB) *clientRepository {
	return &clientRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Client](db, "client"),
	}
}

// Update saves the client row only. The owned address and the contacts have
// their own write paths.
func (g *clientRepository) Update(tx *gorm.DB, client *models.Client) error {
	err := g.GetDB(tx).Omit(clause.Associations).Save(client).Error
	return shared.TranslateDatabaseError("client", err)
}

func (g *clientRepository) Read(id uuid.UUID) (models.Client, error) {
	var client models.Client
	err := g.db.Preload("Address").Preload("Contacts").First(&client, "id = ?", id).Error
	return client, shared.TranslateDatabaseError("client", err)
}

func (g *clientRepository) FindAllPaged(tx *gorm.DB, pageInfo shared.PageInfo, name *string) (shared.Paged[models.Client], error) {
	var count int64
	var clients = []models.Client{}

	q := g.GetDB(tx).Model(&models.Client{})
	if name != nil {
		q = q.Where("clients.name ILIKE ?", "%"+*name+"%")
	}
	q.Count(&count)

	q = pageInfo.ApplyOnDB(g.GetDB(tx)).Preload("Address").Preload("Contacts")
	if name != nil {
		q = q.Where("clients.name ILIKE ?", "%"+*name+"%")
	}

	err := q.Order("created_at desc").Find(&clients).Error
	if err != nil {
		return shared.Paged[models.Client]{}, shared.TranslateDatabaseError("client", err)
	}

	return shared.NewPaged(pageInfo, count, clients), nil
}

// DeleteWithAddress removes the client and its owned address in one
// transaction. Contacts go with the client through the FK cascade.
func (g *clientRepository) DeleteWithAddress(tx *gorm.DB, client models.Client) error {
	doDelete := func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Client{}, "id = ?", client.ID).Error; err != nil {
			return shared.TranslateDatabaseError("client", err)
		}
		if err := tx.Delete(&models.ClientAddress{}, "id = ?", client.AddressID).Error; err != nil {
			return shared.TranslateDatabaseError("client address", err)
		}
		return nil
	}

	if tx != nil {
		return doDelete(tx)
	}
	return g.Transaction(doDelete)
}
