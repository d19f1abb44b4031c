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

package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/helixsec/engage/shared"
)

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler
}

// errorHandler maps the error taxonomy onto status codes in one place, the
// controllers just return errors.
func errorHandler(err error, ctx echo.Context) {
	slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	switch e := err.(type) {
	case *echo.HTTPError:
		code = e.Code
		if m, ok := e.Message.(string); ok {
			message = m
		}
	case *shared.ValidationError:
		code = http.StatusBadRequest
		message = e.Error()
	case *shared.AuthenticationError:
		code = http.StatusUnauthorized
		message = e.Error()
	case *shared.AuthorizationError:
		code = http.StatusForbidden
		message = e.Error()
	case *shared.NotFoundError:
		code = http.StatusNotFound
		message = e.Error()
	case *shared.ConflictError:
		code = http.StatusConflict
		message = e.Error()
	}

	if ctx.Request().Method == http.MethodHead {
		if err := ctx.NoContent(code); err != nil {
			slog.Error("could not send error response", "error", err)
		}
		return
	}

	if err := ctx.JSON(code, echo.Map{"message": message}); err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
