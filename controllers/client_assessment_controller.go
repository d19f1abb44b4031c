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

type ClientAssessmentController struct {
	clientAssessmentRepository shared.ClientAssessmentRepository
	engagementService          shared.EngagementService
}

func NewClientAssessmentController(clientAssessmentRepository shared.ClientAssessmentRepository, engagementService shared.EngagementService) *ClientAssessmentController {
	return &ClientAssessmentController{
		clientAssessmentRepository: clientAssessmentRepository,
		engagementService:          engagementService,
	}
}

func (c *ClientAssessmentController) Create(ctx shared.Context) error {
	var req dtos.ClientAssessmentCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	assessment, err := c.engagementService.CreateClientAssessment(req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, assessment)
}

// List filters by client id and by assessment type name (exact match).
func (c *ClientAssessmentController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.LargePage)
	clientID := shared.UUIDFilter(ctx.QueryParam("client"))
	assessmentType := shared.NameFilter(ctx.QueryParam("assessment_type"))

	assessments, err := c.clientAssessmentRepository.FindAllPaged(nil, pageInfo, clientID, assessmentType)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assessments)
}

func (c *ClientAssessmentController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "clientAssessmentID")
	if err != nil {
		return err
	}

	assessment, err := c.clientAssessmentRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, assessment)
}

func (c *ClientAssessmentController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "clientAssessmentID")
	if err != nil {
		return err
	}

	if err := c.clientAssessmentRepository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
