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
	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
)

type TeamController struct {
	teamRepository shared.TeamRepository
}

func NewTeamController(teamRepository shared.TeamRepository) *TeamController {
	return &TeamController{teamRepository: teamRepository}
}

func (c *TeamController) Create(ctx shared.Context) error {
	var req dtos.TeamCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	team := models.Team{Name: req.Name}
	if err := c.teamRepository.Create(nil, &team); err != nil {
		return err
	}

	return ctx.JSON(201, team)
}

func (c *TeamController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.GroupedPage)

	teams, err := c.teamRepository.FindAllPaged(nil, pageInfo)
	if err != nil {
		return err
	}

	return ctx.JSON(200, teams)
}

func (c *TeamController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "teamID")
	if err != nil {
		return err
	}

	team, err := c.teamRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, team)
}

func (c *TeamController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "teamID")
	if err != nil {
		return err
	}

	var req dtos.TeamCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	team, err := c.teamRepository.Read(id)
	if err != nil {
		return err
	}

	team.Name = req.Name
	if err := c.teamRepository.Update(nil, &team); err != nil {
		return err
	}

	return ctx.JSON(200, team)
}

func (c *TeamController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "teamID")
	if err != nil {
		return err
	}

	if err := c.teamRepository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
