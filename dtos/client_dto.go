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

package dtos

import "github.com/google/uuid"

type ClientAddressRequest struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// ClientAddressPatch updates the existing owned address field by field. The
// address keeps its identity, it is never replaced or re-parented.
type ClientAddressPatch struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
}

type ClientCreateRequest struct {
	Name      string               `json:"name" validate:"required"`
	Email     string               `json:"email" validate:"required,email"`
	PhoneCode string               `json:"phoneCode"`
	Phone     string               `json:"phone"`
	Profile   *string              `json:"profile"`
	Address   ClientAddressRequest `json:"address" validate:"required"`
}

type ClientPatchRequest struct {
	Name      *string             `json:"name"`
	Email     *string             `json:"email"`
	PhoneCode *string             `json:"phoneCode"`
	Phone     *string             `json:"phone"`
	Profile   *string             `json:"profile"`
	Address   *ClientAddressPatch `json:"address"`
}

type ClientContactCreateRequest struct {
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Designation string    `json:"designation"`
	MobileCode  string    `json:"mobileCode"`
	Mobile      string    `json:"mobile"`
	ClientID    uuid.UUID `json:"clientId" validate:"required"`
}

type ClientContactPatchRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Designation *string `json:"designation"`
	MobileCode  *string `json:"mobileCode"`
	Mobile      *string `json:"mobile"`
}
