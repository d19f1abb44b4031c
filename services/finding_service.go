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
	"fmt"

	"github.com/google/uuid"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/transformer"
)

type findingService struct {
	findingRepository       shared.FindingRepository
	urlAssignmentRepository shared.URLAssignmentRepository
	vulnerabilityRepository shared.VulnerabilityRepository
}

func NewFindingService(
	findingRepository shared.FindingRepository,
	urlAssignmentRepository shared.URLAssignmentRepository,
	vulnerabilityRepository shared.VulnerabilityRepository,
) *findingService {
	return &findingService{
		findingRepository:       findingRepository,
		urlAssignmentRepository: urlAssignmentRepository,
		vulnerabilityRepository: vulnerabilityRepository,
	}
}

// checkCategoryMatch rejects findings whose vulnerability belongs to a
// different category of testing than the assessment the target URL was
// assigned under. A finding without a vulnerability is always allowed.
func (s *findingService) checkCategoryMatch(urlAssignmentID uuid.UUID, vulnerabilityID *uuid.UUID) error {
	assignment, err := s.urlAssignmentRepository.Read(urlAssignmentID)
	if err != nil {
		return err
	}

	if vulnerabilityID == nil {
		return nil
	}

	vulnerability, err := s.vulnerabilityRepository.Read(*vulnerabilityID)
	if err != nil {
		return err
	}

	assessmentCategory := assignment.ClientAssessment.AssessmentType.Name
	vulnerabilityCategory := vulnerability.CategoryOfTesting.Name
	if assessmentCategory != vulnerabilityCategory {
		return shared.NewValidationError("vulnerabilityId", fmt.Sprintf(
			"vulnerability category %q does not match the assessment type %q of the url assignment",
			vulnerabilityCategory, assessmentCategory,
		))
	}

	return nil
}

func (s *findingService) CreateFinding(req dtos.FindingCreateRequest) (models.Finding, error) {
	if err := s.checkCategoryMatch(req.URLAssignmentID, &req.VulnerabilityID); err != nil {
		return models.Finding{}, err
	}

	finding := transformer.FindingCreateRequestToModel(req)
	if err := s.findingRepository.Create(nil, &finding); err != nil {
		return models.Finding{}, err
	}

	return s.findingRepository.Read(finding.ID)
}

func (s *findingService) UpdateFinding(id uuid.UUID, patch dtos.FindingPatchRequest) (models.Finding, error) {
	finding, err := s.findingRepository.Read(id)
	if err != nil {
		return models.Finding{}, err
	}

	if !transformer.ApplyFindingPatch(patch, &finding) {
		return finding, nil
	}

	// the pairing rule has to be rechecked whenever either side of the
	// pair moves.
	if patch.URLAssignmentID != nil || patch.VulnerabilityID != nil {
		if err := s.checkCategoryMatch(finding.URLAssignmentID, finding.VulnerabilityID); err != nil {
			return models.Finding{}, err
		}
	}

	if err := s.findingRepository.Update(nil, &finding); err != nil {
		return models.Finding{}, err
	}

	return s.findingRepository.Read(finding.ID)
}
