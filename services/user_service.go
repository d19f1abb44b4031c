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
	"github.com/google/uuid"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
	"github.com/helixsec/engage/transformer"
)

type userService struct {
	userRepository shared.UserRepository
	teamRepository shared.TeamRepository
}

func NewUserService(userRepository shared.UserRepository, teamRepository shared.TeamRepository) *userService {
	return &userService{
		userRepository: userRepository,
		teamRepository: teamRepository,
	}
}

func (s *userService) checkTeam(teamID *uuid.UUID) error {
	if teamID == nil {
		return nil
	}
	_, err := s.teamRepository.Read(*teamID)
	return err
}

func (s *userService) Register(req dtos.RegisterRequest) (models.User, error) {
	if err := s.checkTeam(req.TeamID); err != nil {
		return models.User{}, err
	}

	user := transformer.RegisterRequestToModel(req)
	if err := user.SetPassword(req.Password); err != nil {
		return models.User{}, err
	}

	if err := s.userRepository.Create(nil, &user); err != nil {
		return models.User{}, err
	}

	return s.userRepository.Read(user.ID)
}

func (s *userService) applyAndSave(user models.User, updated bool, password *string, teamID *uuid.UUID) (models.User, error) {
	if err := s.checkTeam(teamID); err != nil {
		return models.User{}, err
	}

	if password != nil {
		updated = true
		if err := user.SetPassword(*password); err != nil {
			return models.User{}, err
		}
	}

	if !updated {
		return user, nil
	}

	if err := s.userRepository.Update(nil, &user); err != nil {
		return models.User{}, err
	}

	return s.userRepository.Read(user.ID)
}

func (s *userService) UpdateUser(id uuid.UUID, patch dtos.UserPatchRequest) (models.User, error) {
	user, err := s.userRepository.Read(id)
	if err != nil {
		return models.User{}, err
	}

	updated := transformer.ApplyUserPatch(patch, &user)
	return s.applyAndSave(user, updated, patch.Password, patch.TeamID)
}

func (s *userService) UpdateProfile(id uuid.UUID, patch dtos.ProfilePatchRequest) (models.User, error) {
	user, err := s.userRepository.Read(id)
	if err != nil {
		return models.User{}, err
	}

	updated := transformer.ApplyProfilePatch(patch, &user)
	return s.applyAndSave(user, updated, patch.Password, patch.TeamID)
}

// Login checks the credentials against the stored hash. Unknown emails and
// wrong passwords are indistinguishable to the caller, disabled accounts
// are rejected outright.
func (s *userService) Login(req dtos.LoginRequest) (models.User, error) {
	user, err := s.userRepository.ReadByEmail(req.Email)
	if err != nil {
		return models.User{}, shared.NewAuthenticationError("invalid credentials")
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return models.User{}, shared.NewAuthenticationError("invalid credentials")
	}

	if !user.IsActive {
		return models.User{}, shared.NewAuthenticationError("account is disabled")
	}

	return user, nil
}
