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

package services

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/transformer"
)

type clientService struct {
	clientRepository  shared.ClientRepository
	addressRepository shared.ClientAddressRepository
}

func NewClientService(clientRepository shared.ClientRepository, addressRepository shared.ClientAddressRepository) *clientService {
	return &clientService{
		clientRepository:  clientRepository,
		addressRepository: addressRepository,
	}
}

// CreateClient persists the embedded address and the client referencing it
// as one unit. If the client insert loses (duplicate email), the transaction
// rolls back and the address is not left orphaned.
func (s *clientService) CreateClient(req dtos.ClientCreateRequest) (models.Client, error) {
	var client models.Client

	err := s.clientRepository.Transaction(func(tx shared.DB) error {
		address := transformer.ClientAddressRequestToModel(req.Address)
		if err := s.addressRepository.Create(tx, &address); err != nil {
			return errors.Wrap(err, "could not create client address")
		}

		client = transformer.ClientCreateRequestToModel(req)
		client.AddressID = address.ID
		if err := s.clientRepository.Create(tx, &client); err != nil {
			return err
		}

		client.Address = address
		return nil
	})

	return client, err
}

// UpdateClient applies a partial update. A present address sub-object is
// applied field by field to the existing owned address, the address entity
// itself is never replaced.
func (s *clientService) UpdateClient(id uuid.UUID, patch dtos.ClientPatchRequest) (models.Client, error) {
	client, err := s.clientRepository.Read(id)
	if err != nil {
		return models.Client{}, err
	}

	clientUpdated := transformer.ApplyClientPatch(patch, &client)

	var address models.ClientAddress
	addressUpdated := false
	if patch.Address != nil {
		address, err = s.addressRepository.Read(client.AddressID)
		if err != nil {
			return models.Client{}, err
		}
		addressUpdated = transformer.ApplyClientAddressPatch(*patch.Address, &address)
	}

	if !clientUpdated && !addressUpdated {
		return client, nil
	}

	err = s.clientRepository.Transaction(func(tx shared.DB) error {
		if addressUpdated {
			if err := s.addressRepository.Update(tx, &address); err != nil {
				return err
			}
			client.Address = address
		}
		if clientUpdated {
			return s.clientRepository.Update(tx, &client)
		}
		return nil
	})
	if err != nil {
		return models.Client{}, err
	}

	return client, nil
}

func (s *clientService) DeleteClient(id uuid.UUID) error {
	client, err := s.clientRepository.Read(id)
	if err != nil {
		return err
	}

	return s.clientRepository.DeleteWithAddress(nil, client)
}
