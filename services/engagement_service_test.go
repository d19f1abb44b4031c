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

type engagementMocks struct {
	clientRepository           *mocks.ClientRepository
	assessmentTypeRepository   *mocks.AssessmentTypeRepository
	complianceTypeRepository   *mocks.ComplianceTypeRepository
	userRepository             *mocks.UserRepository
	clientAssessmentRepository *mocks.ClientAssessmentRepository
	urlAssignmentRepository    *mocks.URLAssignmentRepository
}

func newEngagementMocks(t *testing.T) engagementMocks {
	return engagementMocks{
		clientRepository:           mocks.NewClientRepository(t),
		assessmentTypeRepository:   mocks.NewAssessmentTypeRepository(t),
		complianceTypeRepository:   mocks.NewComplianceTypeRepository(t),
		userRepository:             mocks.NewUserRepository(t),
		clientAssessmentRepository: mocks.NewClientAssessmentRepository(t),
		urlAssignmentRepository:    mocks.NewURLAssignmentRepository(t),
	}
}

func (m engagementMocks) service() *engagementService {
	return NewEngagementService(
		m.clientRepository,
		m.assessmentTypeRepository,
		m.complianceTypeRepository,
		m.userRepository,
		m.clientAssessmentRepository,
		m.urlAssignmentRepository,
	)
}

func TestCreateClientAssessment(t *testing.T) {
	t.Run("should link an existing client and assessment type", func(t *testing.T) {
		m := newEngagementMocks(t)

		clientID := uuid.New()
		assessmentTypeID := uuid.New()

		m.clientRepository.On("Read", clientID).Return(models.Client{Name: "Acme Corp"}, nil)
		m.assessmentTypeRepository.On("Read", assessmentTypeID).Return(models.AssessmentType{Name: "Web"}, nil)
		m.clientAssessmentRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.ClientAssessment")).Run(func(args mock.Arguments) {
			assessment := args.Get(1).(*models.ClientAssessment)
			assessment.ID = uuid.New()
		}).Return(nil)
		m.clientAssessmentRepository.On("Read", mock.AnythingOfType("uuid.UUID")).Return(models.ClientAssessment{
			ClientID:         clientID,
			AssessmentTypeID: assessmentTypeID,
		}, nil)

		assessment, err := m.service().CreateClientAssessment(dtos.ClientAssessmentCreateRequest{
			ClientID:         clientID,
			AssessmentTypeID: assessmentTypeID,
		})

		assert.Nil(t, err)
		assert.Equal(t, clientID, assessment.ClientID)
	})

	t.Run("should reject an unknown client", func(t *testing.T) {
		m := newEngagementMocks(t)

		clientID := uuid.New()
		m.clientRepository.On("Read", clientID).Return(models.Client{}, shared.NewNotFoundError("client"))

		_, err := m.service().CreateClientAssessment(dtos.ClientAssessmentCreateRequest{
			ClientID:         clientID,
			AssessmentTypeID: uuid.New(),
		})

		var notFoundErr *shared.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		m.clientAssessmentRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should surface a duplicate pair as a conflict", func(t *testing.T) {
		m := newEngagementMocks(t)

		clientID := uuid.New()
		assessmentTypeID := uuid.New()

		m.clientRepository.On("Read", clientID).Return(models.Client{}, nil)
		m.assessmentTypeRepository.On("Read", assessmentTypeID).Return(models.AssessmentType{}, nil)
		m.clientAssessmentRepository.On("Create", mock.Anything, mock.Anything).Return(shared.NewConflictError("client assessment", "idx_client_assessment"))

		_, err := m.service().CreateClientAssessment(dtos.ClientAssessmentCreateRequest{
			ClientID:         clientID,
			AssessmentTypeID: assessmentTypeID,
		})

		var conflictErr *shared.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
	})
}

func TestCreateURLAssignment(t *testing.T) {
	t.Run("should validate the optional tester and compliance type", func(t *testing.T) {
		m := newEngagementMocks(t)

		clientAssessmentID := uuid.New()
		testerID := uuid.New()

		m.clientAssessmentRepository.On("Read", clientAssessmentID).Return(models.ClientAssessment{}, nil)
		m.userRepository.On("Read", testerID).Return(models.User{}, shared.NewNotFoundError("user"))

		_, err := m.service().CreateURLAssignment(dtos.URLAssignmentCreateRequest{
			ClientAssessmentID: clientAssessmentID,
			TargetURL:          "https://shop.acme.example",
			TesterID:           &testerID,
		})

		var notFoundErr *shared.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		m.urlAssignmentRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should create an assignment without tester and compliance type", func(t *testing.T) {
		m := newEngagementMocks(t)

		clientAssessmentID := uuid.New()

		m.clientAssessmentRepository.On("Read", clientAssessmentID).Return(models.ClientAssessment{}, nil)
		m.urlAssignmentRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.URLAssignment")).Run(func(args mock.Arguments) {
			assignment := args.Get(1).(*models.URLAssignment)
			assignment.ID = uuid.New()
		}).Return(nil)
		m.urlAssignmentRepository.On("Read", mock.AnythingOfType("uuid.UUID")).Return(models.URLAssignment{
			TargetURL: "https://shop.acme.example",
		}, nil)

		assignment, err := m.service().CreateURLAssignment(dtos.URLAssignmentCreateRequest{
			ClientAssessmentID: clientAssessmentID,
			TargetURL:          "https://shop.acme.example",
		})

		assert.Nil(t, err)
		assert.Equal(t, "https://shop.acme.example", assignment.TargetURL)
	})
}

func TestUpdateURLAssignment(t *testing.T) {
	t.Run("should apply a partial patch and leave other fields alone", func(t *testing.T) {
		m := newEngagementMocks(t)

		assignmentID := uuid.New()
		existing := models.URLAssignment{TargetURL: "https://shop.acme.example", Completed: false}
		existing.ID = assignmentID

		m.urlAssignmentRepository.On("Read", assignmentID).Return(existing, nil).Once()
		m.urlAssignmentRepository.On("Update", mock.Anything, mock.AnythingOfType("*models.URLAssignment")).Return(nil)

		updated := existing
		updated.Completed = true
		m.urlAssignmentRepository.On("Read", assignmentID).Return(updated, nil)

		assignment, err := m.service().UpdateURLAssignment(assignmentID, dtos.URLAssignmentPatchRequest{
			Completed: utils.Ptr(true),
		})

		assert.Nil(t, err)
		assert.True(t, assignment.Completed)
		assert.Equal(t, "https://shop.acme.example", assignment.TargetURL)
	})

	t.Run("should skip the write when the patch changes nothing", func(t *testing.T) {
		m := newEngagementMocks(t)

		assignmentID := uuid.New()
		existing := models.URLAssignment{TargetURL: "https://shop.acme.example"}
		existing.ID = assignmentID

		m.urlAssignmentRepository.On("Read", assignmentID).Return(existing, nil)

		assignment, err := m.service().UpdateURLAssignment(assignmentID, dtos.URLAssignmentPatchRequest{})

		assert.Nil(t, err)
		assert.Equal(t, "https://shop.acme.example", assignment.TargetURL)
		m.urlAssignmentRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
