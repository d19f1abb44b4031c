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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ValidationError rejects malformed input or a violated cross-entity rule.
// Field names the offending input where one exists.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError signals a uniqueness violation. The caller has to change the
// conflicting field, retrying the same payload will never succeed.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e *ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s already exists", e.Resource)
	}
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.Detail)
}

func NewConflictError(resource, detail string) *ConflictError {
	return &ConflictError{Resource: resource, Detail: detail}
}

// NotFoundError signals that a referenced id did not resolve.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// AuthenticationError signals missing or invalid credentials.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

func NewAuthenticationError(reason string) *AuthenticationError {
	return &AuthenticationError{Reason: reason}
}

// AuthorizationError signals insufficient privilege. It is raised before any
// store access happens.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

func NewAuthorizationError(reason string) *AuthorizationError {
	return &AuthorizationError{Reason: reason}
}

// TranslateDatabaseError maps storage errors onto the error taxonomy. The
// unique indexes are the authority for concurrent writers racing on the same
// key - the loser gets a ConflictError, never a silent overwrite.
func TranslateDatabaseError(resource string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique violation
			return NewConflictError(resource, pgErr.ConstraintName)
		case "23503": // FK violation
			return NewValidationError(resource, "referenced record does not exist")
		}
	}

	return err
}
