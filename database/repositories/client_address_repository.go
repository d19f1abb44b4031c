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
	"gorm.io/gorm"
)

type clientAddressRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ClientAddress]
}

func NewClientAddressRepository(db *gorm.DB) *clientAddressRepository {
	return &clientAddressRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ClientAddress](db, "client address"),
	}
}
