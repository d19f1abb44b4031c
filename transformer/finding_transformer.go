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

func FindingCreateRequestToModel(req dtos.FindingCreateRequest) models.Finding {
	vulnerabilityID := req.VulnerabilityID
	return models.Finding{
		URLAssignmentID: req.URLAssignmentID,
		VulnerabilityID: &vulnerabilityID,
		CVSSScore:       req.CVSSScore,
	}
}

func ApplyFindingPatch(patch dtos.FindingPatchRequest, finding *models.Finding) bool {
	updated := false

	if patch.URLAssignmentID != nil {
		updated = true
		finding.URLAssignmentID = *patch.URLAssignmentID
		finding.URLAssignment = models.URLAssignment{}
	}
	if patch.VulnerabilityID != nil {
		updated = true
		finding.VulnerabilityID = patch.VulnerabilityID
		finding.Vulnerability = nil
	}
	if patch.CVSSScore != nil {
		updated = true
		finding.CVSSScore = *patch.CVSSScore
	}

	return updated
}
