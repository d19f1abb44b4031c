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
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/helixsec/engage/shared"
)

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}

// SessionMiddleware authenticates the request from its bearer token. The
// user is loaded on every request so that a disabled account is locked out
// immediately, not at token expiry.
func SessionMiddleware(verifier shared.TokenVerifier, userRepository shared.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return shared.NewAuthenticationError("missing credentials")
			}

			userID, err := verifier.VerifyAccessToken(token)
			if err != nil {
				return err
			}

			user, err := userRepository.Read(userID)
			if err != nil {
				return shared.NewAuthenticationError("invalid token")
			}

			if !user.IsActive {
				return shared.NewAuthenticationError("account is disabled")
			}

			shared.SetSession(ctx, shared.NewSession(user.ID, user.IsStaff))

			return next(ctx)
		}
	}
}

// StaffOnlyMiddleware restricts a route group to staff accounts. It has to
// run after the session middleware.
func StaffOnlyMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.GetSession(ctx)
			if !session.IsAdmin() {
				return shared.NewAuthorizationError("staff privileges required")
			}
			return next(ctx)
		}
	}
}
