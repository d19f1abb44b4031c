// Copyright (C) 2024 helixsec
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

package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil(""))
	assert.Equal(t, "a", *EmptyThenNil("a"))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, "8080", OrDefault(nil, "8080"))
	assert.Equal(t, "3000", OrDefault(Ptr("3000"), "8080"))
}

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, strconv.Itoa))
	assert.Equal(t, []string{}, Map(nil, strconv.Itoa))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"", "null", "undefined"}, "null"))
	assert.False(t, Contains([]string{"", "null", "undefined"}, "Web"))
}
