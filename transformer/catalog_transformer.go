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

func VulnerabilityCreateRequestToModel(req dtos.VulnerabilityCreateRequest) models.Vulnerability {
	return models.Vulnerability{
		Name:                req.Name,
		Description:         req.Description,
		Remediation:         req.Remediation,
		Impact:              req.Impact,
		Reference:           req.Reference,
		CVSS:                req.CVSS,
		CategoryOfTestingID: req.CategoryOfTestingID,
	}
}

func ApplyVulnerabilityPatch(patch dtos.VulnerabilityPatchRequest, vulnerability *models.Vulnerability) bool {
	updated := false

	if patch.Name != nil {
		updated = true
		vulnerability.Name = *patch.Name
	}
	if patch.Description != nil {
		updated = true
		vulnerability.Description = *patch.Description
	}
	if patch.Remediation != nil {
		updated = true
		vulnerability.Remediation = *patch.Remediation
	}
	if patch.Impact != nil {
		updated = true
		vulnerability.Impact = *patch.Impact
	}
	if patch.Reference != nil {
		updated = true
		vulnerability.Reference = *patch.Reference
	}
	if patch.CVSS != nil {
		updated = true
		vulnerability.CVSS = *patch.CVSS
	}
	if patch.CategoryOfTestingID != nil {
		updated = true
		vulnerability.CategoryOfTestingID = *patch.CategoryOfTestingID
		// the preloaded association would otherwise shadow the new id
		vulnerability.CategoryOfTesting = models.AssessmentType{}
	}

	return updated
}
