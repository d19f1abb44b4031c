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
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/mocks"
	"github.com/helixsec/engage/shared"
)

func jsonRequest(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		assert.Nil(t, json.NewEncoder(&buf).Encode(body))
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func TestClientControllerCreate(t *testing.T) {
	t.Run("should return 201 with the created client", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		clientService := mocks.NewClientService(t)

		clientService.On("CreateClient", mock.AnythingOfType("dtos.ClientCreateRequest")).Return(models.Client{Name: "Acme Corp"}, nil)

		controller := NewClientController(clientRepository, clientService)

		rec, ctx := jsonRequest(t, "POST", "/clients/", map[string]any{
			"name":  "Acme Corp",
			"email": "security@acme.example",
			"address": map[string]string{
				"street":     "1 Main St",
				"city":       "Springfield",
				"state":      "IL",
				"postalCode": "62701",
				"country":    "US",
			},
		})

		assert.Nil(t, controller.Create(ctx))
		assert.Equal(t, 201, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acme Corp")
	})

	t.Run("should reject a client without an address", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		clientService := mocks.NewClientService(t)

		controller := NewClientController(clientRepository, clientService)

		_, ctx := jsonRequest(t, "POST", "/clients/", map[string]any{
			"name":  "Acme Corp",
			"email": "security@acme.example",
		})

		err := controller.Create(ctx)
		var validationErr *shared.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		clientService.AssertNotCalled(t, "CreateClient", mock.Anything)
	})
}

func TestClientControllerList(t *testing.T) {
	t.Run("should pass the normalized name filter to the repository", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		clientService := mocks.NewClientService(t)

		clientRepository.On("FindAllPaged", mock.Anything, shared.PageInfo{Page: 1, PageSize: 10}, (*string)(nil)).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10}, 0, []models.Client{}), nil)

		controller := NewClientController(clientRepository, clientService)

		rec, ctx := jsonRequest(t, "GET", "/clients/?name=undefined", nil)

		assert.Nil(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestClientControllerRead(t *testing.T) {
	t.Run("should reject a malformed id", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		clientService := mocks.NewClientService(t)

		controller := NewClientController(clientRepository, clientService)

		_, ctx := jsonRequest(t, "GET", "/clients/abc/", nil)
		ctx.SetParamNames("clientID")
		ctx.SetParamValues("abc")

		var validationErr *shared.ValidationError
		assert.ErrorAs(t, controller.Read(ctx), &validationErr)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		clientService := mocks.NewClientService(t)

		id := uuid.New()
		clientRepository.On("Read", id).Return(models.Client{}, shared.NewNotFoundError("client"))

		controller := NewClientController(clientRepository, clientService)

		_, ctx := jsonRequest(t, "GET", "/clients/"+id.String()+"/", nil)
		ctx.SetParamNames("clientID")
		ctx.SetParamValues(id.String())

		var notFoundErr *shared.NotFoundError
		assert.ErrorAs(t, controller.Read(ctx), &notFoundErr)
	})
}

func TestClientControllerUpdate(t *testing.T) {
	t.Run("should delegate the patch to the service", func(t *testing.T) {
		clientRepository := mocks.NewClientRepository(t)
		clientService := mocks.NewClientService(t)

		id := uuid.New()
		clientService.On("UpdateClient", id, mock.AnythingOfType("dtos.ClientPatchRequest")).Return(models.Client{Name: "Acme Holdings"}, nil)

		controller := NewClientController(clientRepository, clientService)

		rec, ctx := jsonRequest(t, "PATCH", "/clients/"+id.String()+"/", dtos.ClientPatchRequest{})
		ctx.SetParamNames("clientID")
		ctx.SetParamValues(id.String())

		assert.Nil(t, controller.Update(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "Acme Holdings")
	})
}
