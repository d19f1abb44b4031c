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

package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/shared"
)

func newTestTokenService(t *testing.T) *tokenService {
	t.Setenv("JWT_SECRET", "test-secret")
	service, err := NewTokenService()
	assert.Nil(t, err)
	return service
}

func TestTokenService(t *testing.T) {
	user := models.User{Email: "tester@helixsec.example"}
	user.ID = uuid.New()

	t.Run("should fail without a secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewTokenService()
		assert.Error(t, err)
	})

	t.Run("issued access token should verify to the user id", func(t *testing.T) {
		service := newTestTokenService(t)

		pair, err := service.IssueTokens(user)
		assert.Nil(t, err)
		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)

		userID, err := service.VerifyAccessToken(pair.Access)
		assert.Nil(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("refresh token should not work as an access token", func(t *testing.T) {
		service := newTestTokenService(t)

		pair, err := service.IssueTokens(user)
		assert.Nil(t, err)

		_, err = service.VerifyAccessToken(pair.Refresh)
		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("access token should not work for refreshing", func(t *testing.T) {
		service := newTestTokenService(t)

		pair, err := service.IssueTokens(user)
		assert.Nil(t, err)

		_, err = service.Refresh(pair.Access)
		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("refresh should mint a usable access token", func(t *testing.T) {
		service := newTestTokenService(t)

		pair, err := service.IssueTokens(user)
		assert.Nil(t, err)

		access, err := service.Refresh(pair.Refresh)
		assert.Nil(t, err)

		userID, err := service.VerifyAccessToken(access)
		assert.Nil(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		service := newTestTokenService(t)
		pair, err := service.IssueTokens(user)
		assert.Nil(t, err)

		t.Setenv("JWT_SECRET", "other-secret")
		other, err := NewTokenService()
		assert.Nil(t, err)

		_, err = other.VerifyAccessToken(pair.Access)
		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, err, &authErr)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		service := newTestTokenService(t)

		_, err := service.VerifyAccessToken("not a token")
		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, err, &authErr)
	})
}
