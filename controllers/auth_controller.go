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

type AuthController struct {
	userService shared.UserService
	tokenIssuer shared.TokenIssuer
}

func NewAuthController(userService shared.UserService, tokenIssuer shared.TokenIssuer) *AuthController {
	return &AuthController{
		userService: userService,
		tokenIssuer: tokenIssuer,
	}
}

// Login exchanges credentials for an access and refresh token pair.
func (c *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	user, err := c.userService.Login(req)
	if err != nil {
		return err
	}

	tokens, err := c.tokenIssuer.IssueTokens(user)
	if err != nil {
		return err
	}

	return ctx.JSON(200, tokens)
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (c *AuthController) Refresh(ctx shared.Context) error {
	var req dtos.RefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return shared.NewValidationError("body", err.Error())
	}

	access, err := c.tokenIssuer.Refresh(req.Refresh)
	if err != nil {
		return err
	}

	return ctx.JSON(200, dtos.AccessToken{Access: access})
}
