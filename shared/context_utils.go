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
	"strconv"

	"github.com/google/uuid"

	"github.com/helixsec/engage/utils"
)

// AuthSession is the authenticated caller of the current request.
type AuthSession interface {
	GetUserID() uuid.UUID
	IsAdmin() bool
}

type session struct {
	userID uuid.UUID
	staff  bool
}

func (s session) GetUserID() uuid.UUID {
	return s.userID
}

func (s session) IsAdmin() bool {
	return s.staff
}

func NewSession(userID uuid.UUID, staff bool) AuthSession {
	return session{userID: userID, staff: staff}
}

func SetSession(ctx Context, s AuthSession) {
	ctx.Set("session", s)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

// PagePolicy is the per-resource page sizing. Callers may override the page
// size up to Max, never beyond it.
type PagePolicy struct {
	Default int
	Max     int
}

var (
	// GroupedPage is used for team style listings.
	GroupedPage = PagePolicy{Default: 5, Max: 50}
	// StandardPage is used for most resources.
	StandardPage = PagePolicy{Default: 10, Max: 100}
	// LargePage is used for high volume reference and engagement listings.
	LargePage = PagePolicy{Default: 20, Max: 1000}
)

type PageInfo struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     utils.Map(p.Data, f),
	}
}

// GetPageInfo reads page and page_size from the query, clamping the page
// size to the policy of the resource.
func GetPageInfo(ctx Context, policy PagePolicy) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("page_size"))
	switch {
	case pageSize > policy.Max:
		pageSize = policy.Max
	case pageSize <= 0:
		pageSize = policy.Default
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// NameFilter normalizes an optional name query parameter. Browsers serialize
// absent form state as "null" or "undefined", those are treated as absent
// just like the empty string.
func NameFilter(raw string) *string {
	if utils.Contains([]string{"", "null", "undefined"}, raw) {
		return nil
	}
	return &raw
}

// UUIDFilter normalizes an optional id query parameter. Unparsable values
// are treated as absent.
func UUIDFilter(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// GetParamUUID parses a path parameter as uuid.
func GetParamUUID(ctx Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, NewValidationError(name, "not a valid id")
	}
	return id, nil
}
