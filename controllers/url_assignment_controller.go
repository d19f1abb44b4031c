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

package controllers

import (
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
)

type URLAssignmentController struct {
	urlAssignmentRepository shared.URLAssignmentRepository
	engagementService       shared.EngagementService
}

func NewURLAssignmentController(urlAssignmentRepository shared.URLAssignmentRepository, engagementService shared.EngagementService) *URLAssignmentController {
	return &URLAssignmentController{
		urlAssignmentRepository: urlAssignmentRepository,
		engagementService:       engagementService,
	}
}

func (c *URLAssignmentController) Create(ctx shared.Context) error {
	var req dtos.URLAssignmentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	assignment, err := c.engagementService.CreateURLAssignment(req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, assignment)
}

// List filters by client id and by assessment type name of the owning
// client assessment.
func (c *URLAssignmentController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)
	clientID := shared.UUIDFilter(ctx.QueryParam("client_id"))
	assessmentType := shared.NameFilter(ctx.QueryParam("assessment_type"))

	assignments, err := c.urlAssignmentRepository.FindAllPaged(nil, pageInfo, clientID, assessmentType)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assignments)
}

// ListInProgress returns the caller's own assignments whose start, end and
// QA dates and compliance framework are all set.
func (c *URLAssignmentController) ListInProgress(ctx shared.Context) error {
	session := shared.GetSession(ctx)
	pageInfo := shared.GetPageInfo(ctx, shared.LargePage)

	assignments, err := c.urlAssignmentRepository.FindInProgressByTester(nil, pageInfo, session.GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, assignments)
}

func (c *URLAssignmentController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "urlAssignmentID")
	if err != nil {
		return err
	}

	assignment, err := c.urlAssignmentRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assignment)
}

func (c *URLAssignmentController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "urlAssignmentID")
	if err != nil {
		return err
	}

	var patch dtos.URLAssignmentPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	if err := shared.V.Struct(patch); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	assignment, err := c.engagementService.UpdateURLAssignment(id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assignment)
}

func (c *URLAssignmentController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "urlAssignmentID")
	if err != nil {
		return err
	}

	if err := c.urlAssignmentRepository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
