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
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/utils"
	"gorm.io/gorm"
)

// GormRepository is the base every entity repository builds on. Storage
// errors are translated into the shared taxonomy here, so services and
// controllers never see driver specific errors.
type GormRepository[ID comparable, T utils.Tabler] struct {
	db       *gorm.DB
	resource string
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB, resource string) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db:       db,
		resource: resource,
	}
}

func (g *GormRepository[ID, T]) All() ([]T, error) {
	var ts []T
	err := g.db.Find(&ts).Error
	return ts, shared.TranslateDatabaseError(g.resource, err)
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error
	return t, shared.TranslateDatabaseError(g.resource, err)
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return shared.TranslateDatabaseError(g.resource, g.GetDB(tx).Create(t).Error)
}

func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return shared.TranslateDatabaseError(g.resource, g.GetDB(tx).Save(t).Error)
}

func (g *GormRepository[ID, T]) Update(tx *gorm.DB, t *T) error {
	return shared.TranslateDatabaseError(g.resource, g.GetDB(tx).Save(t).Error)
}

func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	return shared.TranslateDatabaseError(g.resource, g.GetDB(tx).Delete(&t, "id = ?", id).Error)
}

func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	tx := g.db.Begin()
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}
