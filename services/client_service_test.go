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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/mocks"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/utils"
)

func runInTransaction(repository *mocks.ClientRepository) {
	repository.On("Transaction", mock.AnythingOfType("func(*gorm.DB) error")).Return(func(f func(shared.DB) error) error {
		return f(nil)
	})
}

func TestCreateClient(t *testing.T) {
	req := dtos.ClientCreateRequest{
		Name:  "Acme Corp",
		Email: "security@acme.example",
		Address: dtos.ClientAddressRequest{
			Street:     "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
			Country:    "US",
		},
	}

	t.Run("should create the address and the client as one unit", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		addressRepository := mocks.NewClientAddressRepository(t)

		addressID := uuid.New()
		runInTransaction(clientRepository)
		addressRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.ClientAddress")).Run(func(args mock.Arguments) {
			address := args.Get(1).(*models.ClientAddress)
			address.ID = addressID
		}).Return(nil)
		clientRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Client")).Return(nil)

		service := NewClientService(clientRepository, addressRepository)

		client, err := service.CreateClient(req)

		assert.Nil(t, err)
		assert.Equal(t, "Acme Corp", client.Name)
		assert.Equal(t, addressID, client.AddressID)
		assert.Equal(t, "Springfield", client.Address.City)
	})

	t.Run("should not create the client when the address insert fails", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		addressRepository := mocks.NewClientAddressRepository(t)

		runInTransaction(clientRepository)
		addressRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.ClientAddress")).Return(assert.AnError)

		service := NewClientService(clientRepository, addressRepository)

		_, err := service.CreateClient(req)

		assert.Error(t, err)
		clientRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateClient(t *testing.T) {
	t.Run("should apply an address sub patch to the owned address", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		addressRepository := mocks.NewClientAddressRepository(t)

		clientID := uuid.New()
		addressID := uuid.New()

		client := models.Client{Name: "Acme Corp", AddressID: addressID}
		client.ID = clientID
		address := models.ClientAddress{Street: "1 Main St", City: "Springfield"}
		address.ID = addressID

		clientRepository.On("Read", clientID).Return(client, nil)
		addressRepository.On("Read", addressID).Return(address, nil)
		runInTransaction(clientRepository)
		addressRepository.On("Update", mock.Anything, mock.AnythingOfType("*models.ClientAddress")).Return(nil)

		service := NewClientService(clientRepository, addressRepository)

		updated, err := service.UpdateClient(clientID, dtos.ClientPatchRequest{
			Address: &dtos.ClientAddressPatch{City: utils.Ptr("Shelbyville")},
		})

		assert.Nil(t, err)
		assert.Equal(t, "Shelbyville", updated.Address.City)
		// the client row itself did not change
		clientRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should not write anything when the patch is empty", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		addressRepository := mocks.NewClientAddressRepository(t)

		clientID := uuid.New()
		client := models.Client{Name: "Acme Corp"}
		client.ID = clientID

		clientRepository.On("Read", clientID).Return(client, nil)

		service := NewClientService(clientRepository, addressRepository)

		updated, err := service.UpdateClient(clientID, dtos.ClientPatchRequest{})

		assert.Nil(t, err)
		assert.Equal(t, "Acme Corp", updated.Name)
		clientRepository.AssertNotCalled(t, "Transaction", mock.Anything)
	})
}

func TestDeleteClient(t *testing.T) {
	t.Run("should delete the client together with its address", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		addressRepository := mocks.NewClientAddressRepository(t)

		clientID := uuid.New()
		client := models.Client{Name: "Acme Corp", AddressID: uuid.New()}
		client.ID = clientID

		clientRepository.On("Read", clientID).Return(client, nil)
		clientRepository.On("DeleteWithAddress", mock.Anything, client).Return(nil)

		service := NewClientService(clientRepository, addressRepository)

		assert.Nil(t, service.DeleteClient(clientID))
	})

	t.Run("should propagate not found", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		addressRepository := mocks.NewClientAddressRepository(t)

		clientID := uuid.New()
		clientRepository.On("Read", clientID).Return(models.Client{}, shared.NewNotFoundError("client"))

		service := NewClientService(clientRepository, addressRepository)

		var notFoundErr *shared.NotFoundError
		assert.ErrorAs(t, service.DeleteClient(clientID), &notFoundErr)
	})
}
