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

package controllers

import "go.uber.org/fx"

// Module provides all controller constructors
var Module = fx.Options(
	fx.Provide(NewClientController),
	fx.Provide(NewClientContactController),
	fx.Provide(NewAssessmentTypeController),
	fx.Provide(NewComplianceTypeController),
	fx.Provide(NewVulnerabilityController),
	fx.Provide(NewClientAssessmentController),
	fx.Provide(NewURLAssignmentController),
	fx.Provide(NewFindingController),
	fx.Provide(NewTeamController),
	fx.Provide(NewUserController),
	fx.Provide(NewAuthController),
)
