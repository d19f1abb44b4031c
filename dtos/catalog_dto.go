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

package dtos

import "github.com/google/uuid"

type AssessmentTypeCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type ComplianceTypeCreateRequest struct {
	Name string `json:"name" validate:"required"`
}

type VulnerabilityCreateRequest struct {
	Name                string    `json:"name" validate:"required"`
	Description         string    `json:"description"`
	Remediation         string    `json:"remediation"`
	Impact              string    `json:"impact"`
	Reference           string    `json:"reference" validate:"omitempty,url"`
	CVSS                string    `json:"cvss"`
	CategoryOfTestingID uuid.UUID `json:"categoryOfTestingId" validate:"required"`
}

type VulnerabilityPatchRequest struct {
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	Remediation         *string    `json:"remediation"`
	Impact              *string    `json:"impact"`
	Reference           *string    `json:"reference"`
	CVSS                *string    `json:"cvss"`
	CategoryOfTestingID *uuid.UUID `json:"categoryOfTestingId"`
}
