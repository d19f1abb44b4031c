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

package shared

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDatabaseError(t *testing.T) {
	t.Run("should pass nil through", func(t *testing.T) {
		assert.Nil(t, TranslateDatabaseError("client", nil))
	})

	t.Run("should map a missing record to not found", func(t *testing.T) {
		err := TranslateDatabaseError("client", gorm.ErrRecordNotFound)

		var notFoundErr *NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "client not found", err.Error())
	})

	t.Run("should map a unique violation to a conflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_client_assessment"}
		err := TranslateDatabaseError("client assessment", errors.Wrap(pgErr, "insert failed"))

		var conflictErr *ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		assert.Contains(t, err.Error(), "idx_client_assessment")
	})

	t.Run("should map a foreign key violation to a validation error", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503"}
		err := TranslateDatabaseError("finding", pgErr)

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("should leave unknown errors untouched", func(t *testing.T) {
		unknown := errors.New("connection refused")
		assert.Equal(t, unknown, TranslateDatabaseError("client", unknown))
	})
}
