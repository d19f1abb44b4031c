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
)

type IdentityRouter struct {
	*echo.Group
}

// NewIdentityRouter registers team and user administration. Account
// management is staff only, teams are readable by everyone who is logged in.
func NewIdentityRouter(
	sessionRouter SessionRouter,
	teamController *controllers.TeamController,
	userController *controllers.UserController,
) IdentityRouter {
	staffOnly := middlewares.StaffOnlyMiddleware()

	teamRouter := sessionRouter.Group.Group("/teams")
	teamRouter.POST("/", teamController.Create, staffOnly)
	teamRouter.GET("/", teamController.List)
	teamRouter.GET("/:teamID/", teamController.Read)
	teamRouter.PATCH("/:teamID/", teamController.Update, staffOnly)
	teamRouter.DELETE("/:teamID/", teamController.Delete, staffOnly)

	userRouter := sessionRouter.Group.Group("/users", staffOnly)
	userRouter.POST("/register/", userController.Register)
	userRouter.GET("/", userController.List)
	userRouter.GET("/:userID/", userController.Read)
	userRouter.PATCH("/:userID/", userController.Update)
	userRouter.DELETE("/:userID/", userController.Delete)

	return IdentityRouter{Group: userRouter}
}
