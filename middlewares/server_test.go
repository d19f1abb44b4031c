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

package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/helixsec/engage/shared"
)

func TestErrorHandler(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", shared.NewValidationError("name", "is required"), 400},
		{"authentication", shared.NewAuthenticationError("invalid credentials"), 401},
		{"authorization", shared.NewAuthorizationError("staff privileges required"), 403},
		{"not found", shared.NewNotFoundError("client"), 404},
		{"conflict", shared.NewConflictError("client", "email"), 409},
		{"echo http error", echo.NewHTTPError(418, "teapot"), 418},
		{"unknown", errors.New("boom"), 500},
	}

	for _, tc := range cases {
		t.Run("should map a "+tc.name+" error", func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), rec)

			errorHandler(tc.err, ctx)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestErrorHandlerDoesNotLeakInternals(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), rec)

	errorHandler(errors.New("pq: password authentication failed"), ctx)

	assert.Equal(t, 500, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}
