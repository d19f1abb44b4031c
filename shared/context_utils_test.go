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
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(query string) Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetPageInfo(t *testing.T) {
	t.Run("should fall back to the policy default", func(t *testing.T) {
		pageInfo := GetPageInfo(contextWithQuery(""), StandardPage)
		assert.Equal(t, 1, pageInfo.Page)
		assert.Equal(t, 10, pageInfo.PageSize)
	})

	t.Run("should honor an explicit page size", func(t *testing.T) {
		pageInfo := GetPageInfo(contextWithQuery("page=3&page_size=25"), StandardPage)
		assert.Equal(t, 3, pageInfo.Page)
		assert.Equal(t, 25, pageInfo.PageSize)
	})

	t.Run("should clamp the page size to the policy maximum", func(t *testing.T) {
		pageInfo := GetPageInfo(contextWithQuery("page_size=5000"), StandardPage)
		assert.Equal(t, 100, pageInfo.PageSize)

		pageInfo = GetPageInfo(contextWithQuery("page_size=5000"), LargePage)
		assert.Equal(t, 1000, pageInfo.PageSize)

		pageInfo = GetPageInfo(contextWithQuery("page_size=5000"), GroupedPage)
		assert.Equal(t, 50, pageInfo.PageSize)
	})

	t.Run("should treat garbage as defaults", func(t *testing.T) {
		pageInfo := GetPageInfo(contextWithQuery("page=abc&page_size=-4"), GroupedPage)
		assert.Equal(t, 1, pageInfo.Page)
		assert.Equal(t, 5, pageInfo.PageSize)
	})
}

func TestNameFilter(t *testing.T) {
	assert.Nil(t, NameFilter(""))
	assert.Nil(t, NameFilter("null"))
	assert.Nil(t, NameFilter("undefined"))

	got := NameFilter("Web")
	if assert.NotNil(t, got) {
		assert.Equal(t, "Web", *got)
	}
}

func TestUUIDFilter(t *testing.T) {
	assert.Nil(t, UUIDFilter(""))
	assert.Nil(t, UUIDFilter("not-a-uuid"))

	id := uuid.New()
	got := UUIDFilter(id.String())
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
}

func TestGetParamUUID(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	ctx.SetParamNames("clientID")
	ctx.SetParamValues("not-a-uuid")

	_, err := GetParamUUID(ctx, "clientID")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestPagedMap(t *testing.T) {
	paged := NewPaged(PageInfo{Page: 1, PageSize: 10}, 2, []int{1, 2})
	mapped := paged.Map(func(i int) any { return i * 2 })

	assert.Equal(t, int64(2), mapped.Total)
	assert.Equal(t, []any{2, 4}, mapped.Data)
}
