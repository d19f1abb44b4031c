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
	"github.com/helixsec/engage/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewClientService, fx.As(new(shared.ClientService)))),
	fx.Provide(fx.Annotate(NewEngagementService, fx.As(new(shared.EngagementService)))),
	fx.Provide(fx.Annotate(NewFindingService, fx.As(new(shared.FindingService)))),
	fx.Provide(fx.Annotate(NewUserService, fx.As(new(shared.UserService)))),
	fx.Provide(fx.Annotate(NewTokenService, fx.As(new(shared.TokenIssuer)), fx.As(new(shared.TokenVerifier)))),
)
