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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/mocks"
	"github.com/helixsec/engage/shared"
)

func requestWithAuth(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func noopHandler(ctx echo.Context) error {
	return ctx.NoContent(200)
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the session for a valid token", func(t *testing.T) {
		verifier := mocks.NewTokenVerifier(t)
		userRepository := mocks.NewUserRepository(t)

		userID := uuid.New()
		user := models.User{IsActive: true, IsStaff: true}
		user.ID = userID

		verifier.On("VerifyAccessToken", "sometoken").Return(userID, nil)
		userRepository.On("Read", userID).Return(user, nil)

		ctx := requestWithAuth("Bearer sometoken")

		handler := SessionMiddleware(verifier, userRepository)(func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			assert.Equal(t, userID, session.GetUserID())
			assert.True(t, session.IsAdmin())
			return nil
		})

		assert.Nil(t, handler(ctx))
	})

	t.Run("should reject a missing authorization header", func(t *testing.T) {
		verifier := mocks.NewTokenVerifier(t)
		userRepository := mocks.NewUserRepository(t)

		handler := SessionMiddleware(verifier, userRepository)(noopHandler)

		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, handler(requestWithAuth("")), &authErr)
	})

	t.Run("should reject a non bearer scheme", func(t *testing.T) {
		verifier := mocks.NewTokenVerifier(t)
		userRepository := mocks.NewUserRepository(t)

		handler := SessionMiddleware(verifier, userRepository)(noopHandler)

		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, handler(requestWithAuth("Basic dXNlcjpwdw==")), &authErr)
	})

	t.Run("should reject a token for a disabled account", func(t *testing.T) {
		verifier := mocks.NewTokenVerifier(t)
		userRepository := mocks.NewUserRepository(t)

		userID := uuid.New()
		user := models.User{IsActive: false}
		user.ID = userID

		verifier.On("VerifyAccessToken", "sometoken").Return(userID, nil)
		userRepository.On("Read", userID).Return(user, nil)

		handler := SessionMiddleware(verifier, userRepository)(noopHandler)

		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, handler(requestWithAuth("Bearer sometoken")), &authErr)
	})

	t.Run("should reject an invalid token", func(t *testing.T) {
		verifier := mocks.NewTokenVerifier(t)
		userRepository := mocks.NewUserRepository(t)

		verifier.On("VerifyAccessToken", "bad").Return(uuid.Nil, shared.NewAuthenticationError("invalid token"))

		handler := SessionMiddleware(verifier, userRepository)(noopHandler)

		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, handler(requestWithAuth("Bearer bad")), &authErr)
	})
}

func TestStaffOnlyMiddleware(t *testing.T) {
	t.Run("should allow staff", func(t *testing.T) {
		ctx := requestWithAuth("")
		shared.SetSession(ctx, shared.NewSession(uuid.New(), true))

		handler := StaffOnlyMiddleware()(noopHandler)
		assert.Nil(t, handler(ctx))
	})

	t.Run("should reject non staff", func(t *testing.T) {
		ctx := requestWithAuth("")
		shared.SetSession(ctx, shared.NewSession(uuid.New(), false))

		handler := StaffOnlyMiddleware()(noopHandler)

		var authzErr *shared.AuthorizationError
		assert.ErrorAs(t, handler(ctx), &authzErr)
	})
}
