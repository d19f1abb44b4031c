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
)

type ClientRouter struct {
	*echo.Group
}

func NewClientRouter(
	sessionRouter SessionRouter,
	clientController *controllers.ClientController,
	contactController *controllers.ClientContactController,
) ClientRouter {
	clientRouter := sessionRouter.Group.Group("/clients")
	clientRouter.POST("/", clientController.Create)
	clientRouter.GET("/", clientController.List)
	clientRouter.GET("/:clientID/", clientController.Read)
	clientRouter.PATCH("/:clientID/", clientController.Update)
	clientRouter.DELETE("/:clientID/", clientController.Delete)

	contactRouter := sessionRouter.Group.Group("/client-contacts")
	contactRouter.POST("/", contactController.Create)
	contactRouter.GET("/", contactController.List)
	contactRouter.GET("/:contactID/", contactController.Read)
	contactRouter.PATCH("/:contactID/", contactController.Update)
	contactRouter.DELETE("/:contactID/", contactController.Delete)

	return ClientRouter{Group: clientRouter}
}
