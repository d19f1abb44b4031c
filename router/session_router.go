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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/helixsec/engage/controllers"
	"github.com/helixsec/engage/middlewares"
	"github.com/helixsec/engage/shared"
)

type SessionRouter struct {
	*echo.Group
}

func whoami(ctx echo.Context) error {
	return ctx.JSON(200, map[string]string{
		"userID": shared.GetSession(ctx).GetUserID().String(),
	})
}

// NewSessionRouter groups everything that requires a valid access token.
func NewSessionRouter(
	apiV1Router APIV1Router,
	verifier shared.TokenVerifier,
	userRepository shared.UserRepository,
	userController *controllers.UserController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(verifier, userRepository),
	)

	sessionRouter.GET("/whoami/", whoami)

	sessionRouter.GET("/profile/", userController.Profile)
	sessionRouter.PATCH("/profile/", userController.UpdateProfile)

	return SessionRouter{Group: sessionRouter}
}
