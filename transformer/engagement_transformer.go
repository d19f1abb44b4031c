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

func ClientAssessmentCreateRequestToModel(req dtos.ClientAssessmentCreateRequest) models.ClientAssessment {
	return models.ClientAssessment{
		ClientID:         req.ClientID,
		AssessmentTypeID: req.AssessmentTypeID,
	}
}

func URLAssignmentCreateRequestToModel(req dtos.URLAssignmentCreateRequest) models.URLAssignment {
	return models.URLAssignment{
		ClientAssessmentID: req.ClientAssessmentID,
		TargetURL:          req.TargetURL,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		QADate:             req.QADate,
		TesterID:           req.TesterID,
		ComplianceTypeID:   req.ComplianceTypeID,
		Completed:          req.Completed,
	}
}

func ApplyURLAssignmentPatch(patch dtos.URLAssignmentPatchRequest, assignment *models.URLAssignment) bool {
	updated := false

	if patch.TargetURL != nil {
		updated = true
		assignment.TargetURL = *patch.TargetURL
	}
	if patch.StartDate != nil {
		updated = true
		assignment.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		updated = true
		assignment.EndDate = patch.EndDate
	}
	if patch.QADate != nil {
		updated = true
		assignment.QADate = patch.QADate
	}
	if patch.TesterID != nil {
		updated = true
		assignment.TesterID = patch.TesterID
		assignment.Tester = nil
	}
	if patch.ComplianceTypeID != nil {
		updated = true
		assignment.ComplianceTypeID = patch.ComplianceTypeID
		assignment.ComplianceType = nil
	}
	if patch.Completed != nil {
		updated = true
		assignment.Completed = *patch.Completed
	}

	return updated
}
