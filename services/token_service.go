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
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/helixsec/engage/database/models"
	"github.com/helixsec/engage/dtos"
	"github.com/helixsec/engage/shared"
)

const (
	accessTokenLifetime  = 15 * time.Minute
	refreshTokenLifetime = 7 * 24 * time.Hour
)

type tokenService struct {
	secret []byte
}

func NewTokenService() (*tokenService, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return &tokenService{secret: []byte(secret)}, nil
}

func (s *tokenService) sign(userID uuid.UUID, typ string, lifetime time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"typ": typ,
		"iat": now.Unix(),
		"exp": now.Add(lifetime).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "could not sign token")
	}
	return signed, nil
}

// parse verifies signature and expiry and checks the token was issued for
// the expected purpose. Access tokens are not accepted for refreshing and
// refresh tokens are not accepted as credentials.
func (s *tokenService) parse(tokenString, expectedType string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, shared.NewAuthenticationError("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, shared.NewAuthenticationError("invalid token")
	}

	if typ, _ := claims["typ"].(string); typ != expectedType {
		return uuid.Nil, shared.NewAuthenticationError("invalid token type")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, shared.NewAuthenticationError("invalid token")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, shared.NewAuthenticationError("invalid token")
	}

	return userID, nil
}

func (s *tokenService) IssueTokens(user models.User) (dtos.TokenPair, error) {
	access, err := s.sign(user.ID, "access", accessTokenLifetime)
	if err != nil {
		return dtos.TokenPair{}, err
	}

	refresh, err := s.sign(user.ID, "refresh", refreshTokenLifetime)
	if err != nil {
		return dtos.TokenPair{}, err
	}

	return dtos.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *tokenService) Refresh(refreshToken string) (string, error) {
	userID, err := s.parse(refreshToken, "refresh")
	if err != nil {
		return "", err
	}
	return s.sign(userID, "access", accessTokenLifetime)
}

func (s *tokenService) VerifyAccessToken(token string) (uuid.UUID, error) {
	return s.parse(token, "access")
}
