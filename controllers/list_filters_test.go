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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/mocks"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/utils"
)

func TestFindingControllerList(t *testing.T) {
	t.Run("should filter by the project_id query param", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		findingService := mocks.NewFindingService(t)

		id := uuid.New()
		findingRepository.On("FindAllPaged", mock.Anything, shared.PageInfo{Page: 1, PageSize: 10}, &id).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10}, 0, []models.Finding{}), nil)

		controller := NewFindingController(findingRepository, findingService)

		rec, ctx := jsonRequest(t, "GET", "/findings/?project_id="+id.String(), nil)

		assert.Nil(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should list unfiltered without the param", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		findingService := mocks.NewFindingService(t)

		findingRepository.On("FindAllPaged", mock.Anything, shared.PageInfo{Page: 1, PageSize: 10}, (*uuid.UUID)(nil)).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10}, 0, []models.Finding{}), nil)

		controller := NewFindingController(findingRepository, findingService)

		rec, ctx := jsonRequest(t, "GET", "/findings/", nil)

		assert.Nil(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestClientAssessmentControllerList(t *testing.T) {
	t.Run("should filter by the client query param", func(t *testing.T) {
		clientAssessmentRepository := mocks.NewClientAssessmentRepository(t)
		engagementService := mocks.NewEngagementService(t)

		id := uuid.New()
		clientAssessmentRepository.On("FindAllPaged", mock.Anything, shared.PageInfo{Page: 1, PageSize: 20}, &id, (*string)(nil)).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 20}, 0, []models.ClientAssessment{}), nil)

		controller := NewClientAssessmentController(clientAssessmentRepository, engagementService)

		rec, ctx := jsonRequest(t, "GET", "/client-assessments/?client="+id.String(), nil)

		assert.Nil(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})

	t.Run("should normalize the assessment_type sentinels", func(t *testing.T) {
		clientAssessmentRepository := mocks.NewClientAssessmentRepository(t)
		engagementService := mocks.NewEngagementService(t)

		clientAssessmentRepository.On("FindAllPaged", mock.Anything, shared.PageInfo{Page: 1, PageSize: 20}, (*uuid.UUID)(nil), (*string)(nil)).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 20}, 0, []models.ClientAssessment{}), nil)

		controller := NewClientAssessmentController(clientAssessmentRepository, engagementService)

		rec, ctx := jsonRequest(t, "GET", "/client-assessments/?assessment_type=null", nil)

		assert.Nil(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestVulnerabilityControllerList(t *testing.T) {
	t.Run("should filter by the assessment_type query param", func(t *testing.T) {
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)
		assessmentTypeRepository := mocks.NewAssessmentTypeRepository(t)

		vulnerabilityRepository.On("FindAllPaged", mock.Anything, shared.PageInfo{Page: 1, PageSize: 10}, utils.Ptr("Web"), (*string)(nil)).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10}, 0, []models.Vulnerability{}), nil)

		controller := NewVulnerabilityController(vulnerabilityRepository, assessmentTypeRepository)

		rec, ctx := jsonRequest(t, "GET", "/vulnerabilities/?assessment_type=Web", nil)

		assert.Nil(t, controller.List(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}
