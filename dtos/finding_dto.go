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

type FindingCreateRequest struct {
	URLAssignmentID uuid.UUID `json:"urlAssignmentId" validate:"required"`
	VulnerabilityID uuid.UUID `json:"vulnerabilityId" validate:"required"`
	CVSSScore       float64   `json:"cvssScore" validate:"gte=0,lte=10"`
}

type FindingPatchRequest struct {
	URLAssignmentID *uuid.UUID `json:"urlAssignmentId"`
	VulnerabilityID *uuid.UUID `json:"vulnerabilityId"`
	CVSSScore       *float64   `json:"cvssScore" validate:"omitempty,gte=0,lte=10"`
}
