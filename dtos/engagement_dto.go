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

import (
	"time"

	"github.com/google/uuid"
)

type ClientAssessmentCreateRequest struct {
	ClientID         uuid.UUID `json:"clientId" validate:"required"`
	AssessmentTypeID uuid.UUID `json:"assessmentTypeId" validate:"required"`
}

type URLAssignmentCreateRequest struct {
	ClientAssessmentID uuid.UUID  `json:"clientAssessmentId" validate:"required"`
	TargetURL          string     `json:"targetUrl" validate:"required,url"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	QADate             *time.Time `json:"qaDate"`
	TesterID           *uuid.UUID `json:"testerId"`
	ComplianceTypeID   *uuid.UUID `json:"complianceTypeId"`
	Completed          bool       `json:"completed"`
}

type URLAssignmentPatchRequest struct {
	TargetURL        *string    `json:"targetUrl"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	QADate           *time.Time `json:"qaDate"`
	TesterID         *uuid.UUID `json:"testerId"`
	ComplianceTypeID *uuid.UUID `json:"complianceTypeId"`
	Completed        *bool      `json:"completed"`
}
