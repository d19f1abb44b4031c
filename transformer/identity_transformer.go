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

package transformer

import (
	"time"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
)

// RegisterRequestToModel builds a user from a registration request. The
// password is hashed by the service, never copied here.
func RegisterRequestToModel(req dtos.RegisterRequest) models.User {
	return models.User{
		Email:         req.Email,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Designation:   req.Designation,
		TeamID:        req.TeamID,
		IsActive:      true,
		DateJoined:    time.Now(),
	}
}

// ApplyUserPatch applies an administrative update. Email changes are
// silently dropped, the password is handled by the service.
func ApplyUserPatch(patch dtos.UserPatchRequest, user *models.User) bool {
	updated := false

	if patch.FirstName != nil {
		updated = true
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		updated = true
		user.LastName = *patch.LastName
	}
	if patch.ContactNumber != nil {
		updated = true
		user.ContactNumber = *patch.ContactNumber
	}
	if patch.Designation != nil {
		updated = true
		user.Designation = *patch.Designation
	}
	if patch.TeamID != nil {
		updated = true
		user.TeamID = patch.TeamID
		user.Team = nil
	}
	if patch.IsStaff != nil {
		updated = true
		user.IsStaff = *patch.IsStaff
	}
	if patch.IsActive != nil {
		updated = true
		user.IsActive = *patch.IsActive
	}

	return updated
}

// ApplyProfilePatch applies the self-service subset of the user update.
func ApplyProfilePatch(patch dtos.ProfilePatchRequest, user *models.User) bool {
	return ApplyUserPatch(dtos.UserPatchRequest{
		FirstName:     patch.FirstName,
		LastName:      patch.LastName,
		ContactNumber: patch.ContactNumber,
		Designation:   patch.Designation,
		TeamID:        patch.TeamID,
	}, user)
}
