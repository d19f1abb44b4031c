// Copyright (C) 2024 helixsec
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

package utils

// Tabler is implemented by every database model.
type Tabler interface {
	TableName() string
}

// Repository is the base contract every entity repository fulfills. Tx is
// the transaction handle type of the underlying storage client.
type Repository[ID comparable, T Tabler, Tx any] interface {
	All() ([]T, error)
	Read(id ID) (T, error)
	Create(tx Tx, t *T) error
	Save(tx Tx, t *T) error
	Update(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx
}
