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

type TeamCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type RegisterRequest struct {
	Email         string     `json:"email" validate:"required,email"`
	Password      string     `json:"password" validate:"required,min=8"`
	FirstName     string     `json:"firstName" validate:"required"`
	LastName      string     `json:"lastName"`
	ContactNumber string     `json:"contactNumber"`
	Designation   string     `json:"designation"`
	TeamID        *uuid.UUID `json:"teamId"`
}

// UserPatchRequest updates a user through the administration surface. A
// present email is silently dropped - it is immutable after creation.
type UserPatchRequest struct {
	Email         *string    `json:"email"`
	Password      *string    `json:"password" validate:"omitempty,min=8"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	ContactNumber *string    `json:"contactNumber"`
	Designation   *string    `json:"designation"`
	TeamID        *uuid.UUID `json:"teamId"`
	IsStaff       *bool      `json:"isStaff"`
	IsActive      *bool      `json:"isActive"`
}

// ProfilePatchRequest is the self-service subset: staff, active and join
// date cannot be changed through this path either.
type ProfilePatchRequest struct {
	Password      *string    `json:"password" validate:"omitempty,min=8"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	ContactNumber *string    `json:"contactNumber"`
	Designation   *string    `json:"designation"`
	TeamID        *uuid.UUID `json:"teamId"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type AccessToken struct {
	Access string `json:"access"`
}
