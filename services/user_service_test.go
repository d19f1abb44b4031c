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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/mocks"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/utils"
)

func TestRegister(t *testing.T) {
	t.Run("should hash the password, never store it in plaintext", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		var stored models.User
		userRepository.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			user := args.Get(1).(*models.User)
			user.ID = uuid.New()
			stored = *user
		}).Return(nil)
		userRepository.On("Read", mock.AnythingOfType("uuid.UUID")).Return(models.User{Email: "tester@helixsec.example"}, nil)

		service := NewUserService(userRepository, teamRepository)

		_, err := service.Register(dtos.RegisterRequest{
			Email:     "tester@helixsec.example",
			Password:  "correct horse battery staple",
			FirstName: "Sam",
		})

		assert.Nil(t, err)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotContains(t, stored.HashedPassword, "correct horse")
		assert.Nil(t, stored.CheckPassword("correct horse battery staple"))
		assert.Error(t, stored.CheckPassword("wrong"))
		assert.True(t, stored.IsActive)
	})

	t.Run("should reject an unknown team", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		teamID := uuid.New()
		teamRepository.On("Read", teamID).Return(models.Team{}, shared.NewNotFoundError("team"))

		service := NewUserService(userRepository, teamRepository)

		_, err := service.Register(dtos.RegisterRequest{
			Email:     "tester@helixsec.example",
			Password:  "correct horse battery staple",
			FirstName: "Sam",
			TeamID:    &teamID,
		})

		var notFoundErr *shared.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
		userRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("should silently drop an email change", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		userID := uuid.New()
		existing := models.User{Email: "original@helixsec.example", FirstName: "Sam"}
		existing.ID = userID

		userRepository.On("Read", userID).Return(existing, nil)

		service := NewUserService(userRepository, teamRepository)

		user, err := service.UpdateUser(userID, dtos.UserPatchRequest{
			Email: utils.Ptr("other@helixsec.example"),
		})

		assert.Nil(t, err)
		assert.Equal(t, "original@helixsec.example", user.Email)
		// nothing else changed, so nothing was written
		userRepository.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should rehash the password on change", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		userID := uuid.New()
		existing := models.User{Email: "tester@helixsec.example"}
		existing.ID = userID
		assert.Nil(t, existing.SetPassword("old password"))
		oldHash := existing.HashedPassword

		var written models.User
		userRepository.On("Read", userID).Return(existing, nil).Once()
		userRepository.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			written = *args.Get(1).(*models.User)
		}).Return(nil)
		userRepository.On("Read", userID).Return(existing, nil)

		service := NewUserService(userRepository, teamRepository)

		_, err := service.UpdateUser(userID, dtos.UserPatchRequest{
			Password: utils.Ptr("new password"),
		})

		assert.Nil(t, err)
		assert.NotEqual(t, oldHash, written.HashedPassword)
		assert.Nil(t, written.CheckPassword("new password"))
	})
}

func TestLogin(t *testing.T) {
	password := "correct horse battery staple"

	activeUser := func() models.User {
		user := models.User{Email: "tester@helixsec.example", IsActive: true}
		user.ID = uuid.New()
		if err := user.SetPassword(password); err != nil {
			t.Fatal(err)
		}
		return user
	}

	t.Run("should return the user on valid credentials", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		user := activeUser()
		userRepository.On("ReadByEmail", user.Email).Return(user, nil)

		service := NewUserService(userRepository, teamRepository)

		got, err := service.Login(dtos.LoginRequest{Email: user.Email, Password: password})

		assert.Nil(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("should not leak whether the email exists", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		user := activeUser()
		userRepository.On("ReadByEmail", user.Email).Return(user, nil)
		userRepository.On("ReadByEmail", "unknown@helixsec.example").Return(models.User{}, shared.NewNotFoundError("user"))

		service := NewUserService(userRepository, teamRepository)

		_, wrongPassword := service.Login(dtos.LoginRequest{Email: user.Email, Password: "wrong"})
		_, unknownEmail := service.Login(dtos.LoginRequest{Email: "unknown@helixsec.example", Password: password})

		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("should reject a disabled account even with valid credentials", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		teamRepository := mocks.NewTeamRepository(t)

		user := activeUser()
		user.IsActive = false
		userRepository.On("ReadByEmail", user.Email).Return(user, nil)

		service := NewUserService(userRepository, teamRepository)

		_, err := service.Login(dtos.LoginRequest{Email: user.Email, Password: password})

		var authErr *shared.AuthenticationError
		assert.ErrorAs(t, err, &authErr)
	})
}
