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

type CatalogRouter struct {
	*echo.Group
}

func NewCatalogRouter(
	sessionRouter SessionRouter,
	assessmentTypeController *controllers.AssessmentTypeController,
	complianceTypeController *controllers.ComplianceTypeController,
	vulnerabilityController *controllers.VulnerabilityController,
) CatalogRouter {
	assessmentTypeRouter := sessionRouter.Group.Group("/assessment-types")
	assessmentTypeRouter.POST("/", assessmentTypeController.Create)
	assessmentTypeRouter.GET("/", assessmentTypeController.List)
	assessmentTypeRouter.GET("/:assessmentTypeID/", assessmentTypeController.Read)
	assessmentTypeRouter.PATCH("/:assessmentTypeID/", assessmentTypeController.Update)
	assessmentTypeRouter.DELETE("/:assessmentTypeID/", assessmentTypeController.Delete)

	complianceTypeRouter := sessionRouter.Group.Group("/compliance-types")
	complianceTypeRouter.POST("/", complianceTypeController.Create)
	complianceTypeRouter.GET("/", complianceTypeController.List)
	complianceTypeRouter.GET("/:complianceTypeID/", complianceTypeController.Read)
	complianceTypeRouter.PATCH("/:complianceTypeID/", complianceTypeController.Update)
	complianceTypeRouter.DELETE("/:complianceTypeID/", complianceTypeController.Delete)

	vulnerabilityRouter := sessionRouter.Group.Group("/vulnerabilities")
	vulnerabilityRouter.POST("/", vulnerabilityController.Create)
	vulnerabilityRouter.GET("/", vulnerabilityController.List)
	vulnerabilityRouter.GET("/:vulnerabilityID/", vulnerabilityController.Read)
	vulnerabilityRouter.PATCH("/:vulnerabilityID/", vulnerabilityController.Update)
	vulnerabilityRouter.DELETE("/:vulnerabilityID/", vulnerabilityController.Delete)

	return CatalogRouter{Group: assessmentTypeRouter}
}
