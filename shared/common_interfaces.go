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

package shared

import (
	"github.com/google/uuid"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/utils"
)

type ClientRepository interface {
	utils.Repository[uuid.UUID, models.Client, DB]
	FindAllPaged(tx DB, pageInfo PageInfo, name *string) (Paged[models.Client], error)
	DeleteWithAddress(tx DB, client models.Client) error
}

type ClientAddressRepository interface {
	utils.Repository[uuid.UUID, models.ClientAddress, DB]
}

type ClientContactRepository interface {
	utils.Repository[uuid.UUID, models.ClientContact, DB]
	FindAllPaged(tx DB, pageInfo PageInfo, clientID *uuid.UUID) (Paged[models.ClientContact], error)
}

type AssessmentTypeRepository interface {
	utils.Repository[uuid.UUID, models.AssessmentType, DB]
	FindAllPaged(tx DB, pageInfo PageInfo) (Paged[models.AssessmentType], error)
}

type ComplianceTypeRepository interface {
	utils.Repository[uuid.UUID, models.ComplianceType, DB]
	FindAllPaged(tx DB, pageInfo PageInfo) (Paged[models.ComplianceType], error)
}

type VulnerabilityRepository interface {
	utils.Repository[uuid.UUID, models.Vulnerability, DB]
	FindAllPaged(tx DB, pageInfo PageInfo, category *string, name *string) (Paged[models.Vulnerability], error)
	DeleteAndDetachFindings(id uuid.UUID) error
}

type ClientAssessmentRepository interface {
	utils.Repository[uuid.UUID, models.ClientAssessment, DB]
	FindAllPaged(tx DB, pageInfo PageInfo, clientID *uuid.UUID, assessmentType *string) (Paged[models.ClientAssessment], error)
}

type URLAssignmentRepository interface {
	utils.Repository[uuid.UUID, models.URLAssignment, DB]
	FindAllPaged(tx DB, pageInfo PageInfo, clientID *uuid.UUID, assessmentType *string) (Paged[models.URLAssignment], error)
	FindInProgressByTester(tx DB, pageInfo PageInfo, testerID uuid.UUID) (Paged[models.URLAssignment], error)
}

type FindingRepository interface {
	utils.Repository[uuid.UUID, models.Finding, DB]
	FindAllPaged(tx DB, pageInfo PageInfo, urlAssignmentID *uuid.UUID) (Paged[models.Finding], error)
}

type TeamRepository interface {
	utils.Repository[uuid.UUID, models.Team, DB]
	FindAllPaged(tx DB, pageInfo PageInfo) (Paged[models.Team], error)
}

type UserRepository interface {
	utils.Repository[uuid.UUID, models.User, DB]
	ReadByEmail(email string) (models.User, error)
	FindAllPaged(tx DB, pageInfo PageInfo) (Paged[models.User], error)
}

type ClientService interface {
	CreateClient(req dtos.ClientCreateRequest) (models.Client, error)
	UpdateClient(id uuid.UUID, patch dtos.ClientPatchRequest) (models.Client, error)
	DeleteClient(id uuid.UUID) error
}

type EngagementService interface {
	CreateClientAssessment(req dtos.ClientAssessmentCreateRequest) (models.ClientAssessment, error)
	CreateURLAssignment(req dtos.URLAssignmentCreateRequest) (models.URLAssignment, error)
	UpdateURLAssignment(id uuid.UUID, patch dtos.URLAssignmentPatchRequest) (models.URLAssignment, error)
}

type FindingService interface {
	CreateFinding(req dtos.FindingCreateRequest) (models.Finding, error)
	UpdateFinding(id uuid.UUID, patch dtos.FindingPatchRequest) (models.Finding, error)
}

type UserService interface {
	Register(req dtos.RegisterRequest) (models.User, error)
	UpdateUser(id uuid.UUID, patch dtos.UserPatchRequest) (models.User, error)
	UpdateProfile(userID uuid.UUID, patch dtos.ProfilePatchRequest) (models.User, error)
	Login(req dtos.LoginRequest) (models.User, error)
}

// TokenIssuer is the credential exchange capability: credentials in, signed
// access and refresh tokens out.
type TokenIssuer interface {
	IssueTokens(user models.User) (dtos.TokenPair, error)
	Refresh(refreshToken string) (string, error)
}

// TokenVerifier resolves a presented access token to the user id it was
// issued for.
type TokenVerifier interface {
	VerifyAccessToken(token string) (uuid.UUID, error)
}
