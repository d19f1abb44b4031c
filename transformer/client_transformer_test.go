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

package transformer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/utils"
)

func TestApplyClientPatch(t *testing.T) {
	t.Run("should report false for an empty patch", func(t *testing.T) {
		client := models.Client{Name: "Acme Corp"}
		assert.False(t, ApplyClientPatch(dtos.ClientPatchRequest{}, &client))
		assert.Equal(t, "Acme Corp", client.Name)
	})

	t.Run("should only touch present fields", func(t *testing.T) {
		client := models.Client{Name: "Acme Corp", Email: "security@acme.example", Phone: "5550100"}

		updated := ApplyClientPatch(dtos.ClientPatchRequest{
			Name: utils.Ptr("Acme Holdings"),
		}, &client)

		assert.True(t, updated)
		assert.Equal(t, "Acme Holdings", client.Name)
		assert.Equal(t, "security@acme.example", client.Email)
		assert.Equal(t, "5550100", client.Phone)
	})

	t.Run("should clear the profile when patched to empty", func(t *testing.T) {
		client := models.Client{Profile: utils.Ptr("old text")}

		updated := ApplyClientPatch(dtos.ClientPatchRequest{
			Profile: utils.Ptr(""),
		}, &client)

		assert.True(t, updated)
		if assert.NotNil(t, client.Profile) {
			assert.Empty(t, *client.Profile)
		}
	})
}

func TestApplyClientAddressPatch(t *testing.T) {
	address := models.ClientAddress{Street: "1 Main St", City: "Springfield", Country: "US"}

	updated := ApplyClientAddressPatch(dtos.ClientAddressPatch{
		City: utils.Ptr("Shelbyville"),
	}, &address)

	assert.True(t, updated)
	assert.Equal(t, "Shelbyville", address.City)
	assert.Equal(t, "1 Main St", address.Street)
	assert.Equal(t, "US", address.Country)
}

func TestApplyURLAssignmentPatch(t *testing.T) {
	t.Run("should drop the stale preloaded tester when the id changes", func(t *testing.T) {
		oldTester := models.User{FirstName: "Sam"}
		assignment := models.URLAssignment{
			TesterID: utils.Ptr(uuid.New()),
			Tester:   &oldTester,
		}

		newTesterID := uuid.New()
		updated := ApplyURLAssignmentPatch(dtos.URLAssignmentPatchRequest{
			TesterID: &newTesterID,
		}, &assignment)

		assert.True(t, updated)
		assert.Equal(t, newTesterID, *assignment.TesterID)
		assert.Nil(t, assignment.Tester)
	})
}

func TestApplyUserPatch(t *testing.T) {
	t.Run("should never change the email", func(t *testing.T) {
		user := models.User{Email: "original@helixsec.example"}

		updated := ApplyUserPatch(dtos.UserPatchRequest{
			Email: utils.Ptr("new@helixsec.example"),
		}, &user)

		assert.False(t, updated)
		assert.Equal(t, "original@helixsec.example", user.Email)
	})

	t.Run("should allow detaching from a team", func(t *testing.T) {
		user := models.User{TeamID: utils.Ptr(uuid.New()), Team: &models.Team{Name: "Red Team"}}

		newTeamID := uuid.New()
		updated := ApplyUserPatch(dtos.UserPatchRequest{TeamID: &newTeamID}, &user)

		assert.True(t, updated)
		assert.Equal(t, newTeamID, *user.TeamID)
		assert.Nil(t, user.Team)
	})
}
