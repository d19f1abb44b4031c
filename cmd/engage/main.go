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

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/helixsec/engage/controllers"
	"github.com/helixsec/engage/database"
	"github.com/helixsec/engage/database/repositories"
	"github.com/helixsec/engage/middlewares"
	"github.com/helixsec/engage/router"
	"github.com/helixsec/engage/services"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/utils"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	pool, err := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	db, err := database.NewGormDB(pool)
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(middlewares.Server),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,

		// the routers register their routes on construction, invoking them
		// forces construction
		fx.Invoke(func(router.ClientRouter) {}),
		fx.Invoke(func(router.CatalogRouter) {}),
		fx.Invoke(func(router.EngagementRouter) {}),
		fx.Invoke(func(router.IdentityRouter) {}),
		fx.Invoke(startServer),
	).Run()
}

func startServer(lc fx.Lifecycle, e *echo.Echo) {
	port := utils.OrDefault(utils.EmptyThenNil(os.Getenv("PORT")), "8080")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(":" + port); err != nil {
					slog.Error("server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
