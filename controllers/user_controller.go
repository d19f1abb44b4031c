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

type UserController struct {
	userRepository shared.UserRepository
	userService    shared.UserService
}

func NewUserController(userRepository shared.UserRepository, userService shared.UserService) *UserController {
	return &UserController{
		userRepository: userRepository,
		userService:    userService,
	}
}

// Register creates a new internal account. The route is staff-guarded, an
// open registration endpoint does not exist.
func (c *UserController) Register(ctx shared.Context) error {
	var req dtos.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	user, err := c.userService.Register(req)
	if err != nil {
		return err
	}

	return ctx.JSON(201, user)
}

func (c *UserController) List(ctx shared.Context) error {
	pageInfo := shared.GetPageInfo(ctx, shared.StandardPage)

	users, err := c.userRepository.FindAllPaged(nil, pageInfo)
	if err != nil {
		return err
	}

	return ctx.JSON(200, users)
}

func (c *UserController) Read(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "userID")
	if err != nil {
		return err
	}

	user, err := c.userRepository.Read(id)
	if err != nil {
		return err
	}

	return ctx.JSON(200, user)
}

func (c *UserController) Update(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "userID")
	if err != nil {
		return err
	}

	var patch dtos.UserPatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	if err := shared.V.Struct(patch); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	user, err := c.userService.UpdateUser(id, patch)
	if err != nil {
		return err
	}

	return ctx.JSON(200, user)
}

func (c *UserController) Delete(ctx shared.Context) error {
	id, err := shared.GetParamUUID(ctx, "userID")
	if err != nil {
		return err
	}

	if err := c.userRepository.Delete(nil, id); err != nil {
		return err
	}

	return ctx.NoContent(204)
}

// Profile returns the caller's own account.
func (c *UserController) Profile(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	user, err := c.userRepository.Read(session.GetUserID())
	if err != nil {
		return err
	}

	return ctx.JSON(200, user)
}

func (c *UserController) UpdateProfile(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	var patch dtos.ProfilePatchRequest
	if err := ctx.Bind(&patch); err != nil {
		return err
	}

	if err := shared.V.Struct(patch); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	user, err := c.userService.UpdateProfile(session.GetUserID(), patch)
	if err != nil {
		return err
	}

	return ctx.JSON(200, user)
}
