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

type EngagementRouter struct {
	*echo.Group
}

func NewEngagementRouter(
	sessionRouter SessionRouter,
	clientAssessmentController *controllers.ClientAssessmentController,
	urlAssignmentController *controllers.URLAssignmentController,
	findingController *controllers.FindingController,
) EngagementRouter {
	clientAssessmentRouter := sessionRouter.Group.Group("/client-assessments")
	clientAssessmentRouter.POST("/", clientAssessmentController.Create)
	clientAssessmentRouter.GET("/", clientAssessmentController.List)
	clientAssessmentRouter.GET("/:clientAssessmentID/", clientAssessmentController.Read)
	clientAssessmentRouter.DELETE("/:clientAssessmentID/", clientAssessmentController.Delete)

	urlAssignmentRouter := sessionRouter.Group.Group("/url-assignments")
	urlAssignmentRouter.POST("/", urlAssignmentController.Create)
	urlAssignmentRouter.GET("/", urlAssignmentController.List)
	// in-progress has to be registered before the id route, otherwise echo
	// matches it as an id
	urlAssignmentRouter.GET("/in-progress/", urlAssignmentController.ListInProgress)
	urlAssignmentRouter.GET("/:urlAssignmentID/", urlAssignmentController.Read)
	urlAssignmentRouter.PATCH("/:urlAssignmentID/", urlAssignmentController.Update)
	urlAssignmentRouter.DELETE("/:urlAssignmentID/", urlAssignmentController.Delete)

	findingRouter := sessionRouter.Group.Group("/findings")
	findingRouter.POST("/", findingController.Create)
	findingRouter.GET("/", findingController.List)
	findingRouter.GET("/:findingID/", findingController.Read)
	findingRouter.PATCH("/:findingID/", findingController.Update)
	findingRouter.DELETE("/:findingID/", findingController.Delete)

	return EngagementRouter{Group: clientAssessmentRouter}
}
