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
	"github.com/helixsec/engage/transformer"
)

type ClientContactController struct {
	contactRepository shared.ClientContactRepository
	clientRepository  shared.ClientRepository
}

func NewClientContactController(contactRepository shared.ClientContactRepository, clientRepository shared.ClientRepository) *ClientContactController {
	return &ClientContactController{
		contactRepository: contactRepository,
		clientRepository:  clientRepository,
	}
}

func (c *ClientContactController) Create(ctx shared.Context) error {
	var req dtos.ClientContactCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	if _, err := c.clientRepository.Read(req.ClientID); err != nil {
		return err
	}

	contact := transformer.ClientContactCreateRequestToModel(req)
	if err := c.contactRepository.Create(nil, &contact); err != nil {
		return err
	}

	return ctx.JSON(201, contact)
}

func (c *ClientContactController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.GroupedPage)
	clientID := shared.UUIDFilter(ctx.QueryParam("client_id"))

	contacts, err := c.contactRepository.FindAllPaged(nil, pageInfo, clientID)
	if err != nil {
		return err
	}

	return ctx.JSON(200, contacts)
}

func (c *ClientContactController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "contactID")
	if err != nil {
		return err
	}

	contact, err := c.contactRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, contact)
}

func (c *ClientContactController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "contactID")
	if err != nil {
		return err
	}

	var patch dtos.ClientContactPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	contact, err := c.contactRepository.Read(id)
	if err != nil {
		return err
	}

	if transformer.ApplyClientContactPatch(patch, &contact) {
		if err := c.contactRepository.Update(nil, &contact); err != nil {
			return err
		}
	}

	return ctx.JSON(200, contact)
}

func (c *ClientContactController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "contactID")
	if err != nil {
		return err
	}

	if err := c.contactRepository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}
