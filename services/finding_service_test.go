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

func assignmentWithCategory(id uuid.UUID, category string) models.URLAssignment {
	assignment := models.URLAssignment{
		ClientAssessment: models.ClientAssessment{
			AssessmentType: models.AssessmentType{Name: category},
		},
	}
	assignment.ID = id
	return assignment
}

func vulnerabilityWithCategory(id uuid.UUID, category string) models.Vulnerability {
	vulnerability := models.Vulnerability{
		Name:              "SQL Injection",
		CategoryOfTesting: models.AssessmentType{Name: category},
	}
	vulnerability.ID = id
	return vulnerability
}

func TestCreateFinding(t *testing.T) {
	t.Run("should reject a finding whose vulnerability category does not match the assessment type", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		urlAssignmentRepository := mocks.NewURLAssignmentRepository(t)
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)

		assignmentID := uuid.New()
		vulnerabilityID := uuid.New()

		urlAssignmentRepository.On("Read", assignmentID).Return(assignmentWithCategory(assignmentID, "Web"), nil)
		vulnerabilityRepository.On("Read", vulnerabilityID).Return(vulnerabilityWithCategory(vulnerabilityID, "Network"), nil)

		service := NewFindingService(findingRepository, urlAssignmentRepository, vulnerabilityRepository)

		_, err := service.CreateFinding(dtos.FindingCreateRequest{
			URLAssignmentID: assignmentID,
			VulnerabilityID: vulnerabilityID,
			CVSSScore:       7.5,
		})

		assert.Error(t, err)
		var validationErr *shared.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Contains(t, err.Error(), "Web")
		assert.Contains(t, err.Error(), "Network")
		findingRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should persist a finding when the categories match", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		urlAssignmentRepository := mocks.NewURLAssignmentRepository(t)
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)

		assignmentID := uuid.New()
		vulnerabilityID := uuid.New()

		urlAssignmentRepository.On("Read", assignmentID).Return(assignmentWithCategory(assignmentID, "Web"), nil)
		vulnerabilityRepository.On("Read", vulnerabilityID).Return(vulnerabilityWithCategory(vulnerabilityID, "Web"), nil)

		findingRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.Finding")).Run(func(args mock.Arguments) {
			finding := args.Get(1).(*models.Finding)
			finding.ID = uuid.New()
		}).Return(nil)
		findingRepository.On("Read", mock.AnythingOfType("uuid.UUID")).Return(models.Finding{CVSSScore: 7.5}, nil)

		service := NewFindingService(findingRepository, urlAssignmentRepository, vulnerabilityRepository)

		finding, err := service.CreateFinding(dtos.FindingCreateRequest{
			URLAssignmentID: assignmentID,
			VulnerabilityID: vulnerabilityID,
			CVSSScore:       7.5,
		})

		assert.Nil(t, err)
		assert.Equal(t, 7.5, finding.CVSSScore)
	})

	t.Run("should return not found when the url assignment does not exist", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		urlAssignmentRepository := mocks.NewURLAssignmentRepository(t)
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)

		assignmentID := uuid.New()
		urlAssignmentRepository.On("Read", assignmentID).Return(models.URLAssignment{}, shared.NewNotFoundError("url assignment"))

		service := NewFindingService(findingRepository, urlAssignmentRepository, vulnerabilityRepository)

		_, err := service.CreateFinding(dtos.FindingCreateRequest{
			URLAssignmentID: assignmentID,
			VulnerabilityID: uuid.New(),
		})

		var notFoundErr *shared.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})
}

func TestUpdateFinding(t *testing.T) {
	t.Run("should recheck the category rule when the vulnerability changes", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		urlAssignmentRepository := mocks.NewURLAssignmentRepository(t)
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)

		findingID := uuid.New()
		assignmentID := uuid.New()
		oldVulnerabilityID := uuid.New()
		newVulnerabilityID := uuid.New()

		existing := models.Finding{
			URLAssignmentID: assignmentID,
			VulnerabilityID: &oldVulnerabilityID,
			CVSSScore:       5.0,
		}
		existing.ID = findingID

		findingRepository.On("Read", findingID).Return(existing, nil)
		urlAssignmentRepository.On("Read", assignmentID).Return(assignmentWithCategory(assignmentID, "Web"), nil)
		vulnerabilityRepository.On("Read", newVulnerabilityID).Return(vulnerabilityWithCategory(newVulnerabilityID, "Network"), nil)

		service := NewFindingService(findingRepository, urlAssignmentRepository, vulnerabilityRepository)

		_, err := service.UpdateFinding(findingID, dtos.FindingPatchRequest{
			VulnerabilityID: &newVulnerabilityID,
		})

		var validationErr *shared.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		findingRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should skip the category check when only the score changes", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		urlAssignmentRepository := mocks.NewURLAssignmentRepository(t)
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)

		findingID := uuid.New()
		existing := models.Finding{
			URLAssignmentID: uuid.New(),
			CVSSScore:       5.0,
		}
		existing.ID = findingID

		findingRepository.On("Read", findingID).Return(existing, nil).Once()
		findingRepository.On("Update", mock.Anything, mock.AnythingOfType("*models.Finding")).Return(nil)

		updated := existing
		updated.CVSSScore = 9.1
		findingRepository.On("Read", findingID).Return(updated, nil)

		service := NewFindingService(findingRepository, urlAssignmentRepository, vulnerabilityRepository)

		finding, err := service.UpdateFinding(findingID, dtos.FindingPatchRequest{
			CVSSScore: utils.Ptr(9.1),
		})

		assert.Nil(t, err)
		assert.Equal(t, 9.1, finding.CVSSScore)
		urlAssignmentRepository.AssertNotCalled(t, "Read", mock.Anything)
	})

	t.Run("should not touch the store when nothing changed", func(t *testing.T) {
		findingRepository := mocks.NewFindingRepository(t)
		urlAssignmentRepository := mocks.NewURLAssignmentRepository(t)
		vulnerabilityRepository := mocks.NewVulnerabilityRepository(t)

		findingID := uuid.New()
		existing := models.Finding{CVSSScore: 5.0}
		existing.ID = findingID

		findingRepository.On("Read", findingID).Return(existing, nil)

		service := NewFindingService(findingRepository, urlAssignmentRepository, vulnerabilityRepository)

		finding, err := service.UpdateFinding(findingID, dtos.FindingPatchRequest{})

		assert.Nil(t, err)
		assert.Equal(t, 5.0, finding.CVSSScore)
		findingRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
