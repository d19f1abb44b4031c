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

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/transformer"
)

type engagementService struct {
	clientRepository           shared.ClientRepository
	assessmentTypeRepository   shared.AssessmentTypeRepository
	complianceTypeRepository   shared.ComplianceTypeRepository
	userRepository             shared.UserRepository
	clientAssessmentRepository shared.ClientAssessmentRepository
	urlAssignmentRepository    shared.URLAssignmentRepository
}

func NewEngagementService(
	clientRepository shared.ClientRepository,
	assessmentTypeRepository shared.AssessmentTypeRepository,
	complianceTypeRepository shared.ComplianceTypeRepository,
	userRepository shared.UserRepository,
	clientAssessmentRepository shared.ClientAssessmentRepository,
	urlAssignmentRepository shared.URLAssignmentRepository,
) *engagementService {
	return &engagementService{
		clientRepository:           clientRepository,
		assessmentTypeRepository:   assessmentTypeRepository,
		complianceTypeRepository:   complianceTypeRepository,
		userRepository:             userRepository,
		clientAssessmentRepository: clientAssessmentRepository,
		urlAssignmentRepository:    urlAssignmentRepository,
	}
}

// CreateClientAssessment links an existing client to an existing assessment
// type. Duplicate pairs lose against the composite unique index and surface
// as a conflict.
func (s *engagementService) CreateClientAssessment(req dtos.ClientAssessmentCreateRequest) (models.ClientAssessment, error) {
	if _, err := s.clientRepository.Read(req.ClientID); err != nil {
		return models.ClientAssessment{}, err
	}
	if _, err := s.assessmentTypeRepository.Read(req.AssessmentTypeID); err != nil {
		return models.ClientAssessment{}, err
	}

	assessment := transformer.ClientAssessmentCreateRequestToModel(req)
	if err := s.clientAssessmentRepository.Create(nil, &assessment); err != nil {
		return models.ClientAssessment{}, err
	}

	return s.clientAssessmentRepository.Read(assessment.ID)
}

func (s *engagementService) checkURLAssignmentRefs(testerID, complianceTypeID *uuid.UUID) error {
	if testerID != nil {
		if _, err := s.userRepository.Read(*testerID); err != nil {
			return err
		}
	}
	if complianceTypeID != nil {
		if _, err := s.complianceTypeRepository.Read(*complianceTypeID); err != nil {
			return err
		}
	}
	return nil
}

func (s *engagementService) CreateURLAssignment(req dtos.URLAssignmentCreateRequest) (models.URLAssignment, error) {
	if _, err := s.clientAssessmentRepository.Read(req.ClientAssessmentID); err != nil {
		return models.URLAssignment{}, err
	}
	if err := s.checkURLAssignmentRefs(req.TesterID, req.ComplianceTypeID); err != nil {
		return models.URLAssignment{}, err
	}

	assignment := transformer.URLAssignmentCreateRequestToModel(req)
	if err := s.urlAssignmentRepository.Create(nil, &assignment); err != nil {
		return models.URLAssignment{}, err
	}

	return s.urlAssignmentRepository.Read(assignment.ID)
}

func (s *engagementService) UpdateURLAssignment(id uuid.UUID, patch dtos.URLAssignmentPatchRequest) (models.URLAssignment, error) {
	assignment, err := s.urlAssignmentRepository.Read(id)
	if err != nil {
		return models.URLAssignment{}, err
	}

	if !transformer.ApplyURLAssignmentPatch(patch, &assignment) {
		return assignment, nil
	}

	if err := s.checkURLAssignmentRefs(patch.TesterID, patch.ComplianceTypeID); err != nil {
		return models.URLAssignment{}, err
	}

	if err := s.urlAssignmentRepository.Update(nil, &assignment); err != nil {
		return models.URLAssignment{}, err
	}

	return s.urlAssignmentRepository.Read(assignment.ID)
}
