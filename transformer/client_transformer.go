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
	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
)

func ClientAddressRequestToModel(req dtos.ClientAddressRequest) models.ClientAddress {
	return models.ClientAddress{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
}

func ClientCreateRequestToModel(req dtos.ClientCreateRequest) models.Client {
	return models.Client{
		Name:      req.Name,
		Email:     req.Email,
		PhoneCode: req.PhoneCode,
		Phone:     req.Phone,
		Profile:   req.Profile,
	}
}

// ApplyClientAddressPatch updates the existing address record in place -
// its identity never changes.
func ApplyClientAddressPatch(patch dtos.ClientAddressPatch, address *models.ClientAddress) bool {
	updated := false

	if patch.Street != nil {
		updated = true
		address.Street = *patch.Street
	}
	if patch.City != nil {
		updated = true
		address.City = *patch.City
	}
	if patch.State != nil {
		updated = true
		address.State = *patch.State
	}
	if patch.PostalCode != nil {
		updated = true
		address.PostalCode = *patch.PostalCode
	}
	if patch.Country != nil {
		updated = true
		address.Country = *patch.Country
	}

	return updated
}

func ApplyClientPatch(patch dtos.ClientPatchRequest, client *models.Client) bool {
	updated := false

	if patch.Name != nil {
		updated = true
		client.Name = *patch.Name
	}
	if patch.Email != nil {
		updated = true
		client.Email = *patch.Email
	}
	if patch.PhoneCode != nil {
		updated = true
		client.PhoneCode = *patch.PhoneCode
	}
	if patch.Phone != nil {
		updated = true
		client.Phone = *patch.Phone
	}
	if patch.Profile != nil {
		updated = true
		client.Profile = patch.Profile
	}

	return updated
}

func ClientContactCreateRequestToModel(req dtos.ClientContactCreateRequest) models.ClientContact {
	return models.ClientContact{
		Name:        req.Name,
		Email:       req.Email,
		Designation: req.Designation,
		MobileCode:  req.MobileCode,
		Mobile:      req.Mobile,
		ClientID:    req.ClientID,
	}
}

func ApplyClientContactPatch(patch dtos.ClientContactPatchRequest, contact *models.ClientContact) bool {
	updated := false

	if patch.Name != nil {
		updated = true
		contact.Name = *patch.Name
	}
	if patch.Email != nil {
		updated = true
		contact.Email = *patch.Email
	}
	if patch.Designation != nil {
		updated = true
		contact.Designation = *patch.Designation
	}
	if patch.MobileCode != nil {
		updated = true
		contact.MobileCode = *patch.MobileCode
	}
	if patch.Mobile != nil {
		updated = true
		contact.Mobile = *patch.Mobile
	}

	return updated
}
