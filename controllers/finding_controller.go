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

type FindingController struct {
	findingRepository shared.FindingRepository
	findingService    shared.FindingService
}

func NewFindingController(findingRepository shared.FindingRepository, findingService shared.FindingService) *FindingController {
	return &FindingController{
		findingRepository: findingRepository,
		findingService:    findingService,
	}
}

func (c *FindingController) Create(ctx shared.Context) error {
	var req dtos.FindingCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	finding, err := c.findingService.CreateFinding(req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, finding)
}

// List filters by project_id, the id of the owning url assignment.
func (c *FindingController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)
	urlAssignmentID := shared.UUIDFilter(ctx.QueryParam("project_id"))

	findings, err := c.findingRepository.FindAllPaged(nil, pageInfo, urlAssignmentID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, findings)
}

func (c *FindingController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "findingID")
	if err != nil {
		return err
	}

	finding, err := c.findingRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, finding)
}

func (c *FindingController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "findingID")
	if err != nil {
		return err
	}

	var patch dtos.FindingPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	if err := shared.V.Struct(patch); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	finding, err := c.findingService.UpdateFinding(id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(200, finding)
}

func (c *FindingController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "findingID")
	if err != nil {
		return err
	}

	if err := c.findingRepository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
