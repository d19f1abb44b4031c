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

type ClientController struct {
	clientRepository shared.ClientRepository
	clientService    shared.ClientService
}

func NewClientController(clientRepository shared.ClientRepository, clientService shared.ClientService) *ClientController {
	return &ClientController{
		clientRepository: clientRepository,
		clientService:    clientService,
	}
}

func (c *ClientController) Create(ctx shared.Context) error {
	var req dtos.ClientCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	client, err := c.clientService.CreateClient(req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, client)
}

func (c *ClientController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)
	name := shared.NameFilter(ctx.QueryParam("name"))

	clients, err := c.clientRepository.FindAllPaged(nil, pageInfo, name)
	if err != nil {
		return err
	}

	return ctx.JSON(200, clients)
}

func (c *ClientController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "clientID")
	if err != nil {
		return err
	}

	client, err := c.clientRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, client)
}

func (c *ClientController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "clientID")
	if err != nil {
		return err
	}

	var patch dtos.ClientPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	if err := shared.V.Struct(patch); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	client, err := c.clientService.UpdateClient(id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(200, client)
}

func (c *ClientController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "clientID")
	if err != nil {
		return err
	}

	if err := c.clientService.DeleteClient(id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
