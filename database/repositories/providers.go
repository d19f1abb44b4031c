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

package repositories

import (
	"github.com/helixsec/engage/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewClientRepository, fx.As(new(shared.ClientRepository)))),
	fx.Provide(fx.Annotate(NewClientAddressRepository, fx.As(new(shared.ClientAddressRepository)))),
	fx.Provide(fx.Annotate(NewClientContactRepository, fx.As(new(shared.ClientContactRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentTypeRepository, fx.As(new(shared.AssessmentTypeRepository)))),
	fx.Provide(fx.Annotate(NewComplianceTypeRepository, fx.As(new(shared.ComplianceTypeRepository)))),
	fx.Provide(fx.Annotate(NewVulnerabilityRepository, fx.As(new(shared.VulnerabilityRepository)))),
	fx.Provide(fx.Annotate(NewClientAssessmentRepository, fx.As(new(shared.ClientAssessmentRepository)))),
	fx.Provide(fx.Annotate(NewURLAssignmentRepository, fx.As(new(shared.URLAssignmentRepository)))),
	fx.Provide(fx.Annotate(NewFindingRepository, fx.As(new(shared.FindingRepository)))),
	fx.Provide(fx.Annotate(NewTeamRepository, fx.As(new(shared.TeamRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
)
