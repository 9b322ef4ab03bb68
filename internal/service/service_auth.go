// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package service

import (
	"fmt"
	"strings"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// AuthService owns all authentication and registration business rules:
// first-time login with default credentials, registration of personal
// credentials, authentication of subsequent logins and username uniqueness.
type AuthService struct {
	state *models.AppState
	log   *logger.Logger
}

// NewAuthService creates an AuthService over the shared application state.
func NewAuthService(state *models.AppState, log *logger.Logger) *AuthService {
	return &AuthService{state: state, log: log}
}

// IsFirstEverLaunch reports whether no configurator has been registered yet,
// i.e. the application is running for the very first time.
func (s *AuthService) IsFirstEverLaunch() bool {
	return len(s.state.Configurators) == 0
}

// IsDefaultCredentials reports whether the supplied pair matches the
// system-wide default credentials.
func (s *AuthService) IsDefaultCredentials(username, password string) bool {
	return username == models.DefaultUsername && password == models.DefaultPassword
}

// IsUsernameTaken reports whether the given username is already taken by any
// configurator (case-insensitive).
func (s *AuthService) IsUsernameTaken(username string) bool {
	username = strings.TrimSpace(username)
	for _, c := range s.state.Configurators {
		if strings.EqualFold(c.Username(), username) {
			return true
		}
	}
	return false
}

// CreatePendingConfigurator creates a configurator with the default
// credentials, marked as pending first-login registration, and appends it to
// the state. Called only during the very first launch; fails with
// [ErrConfiguratorExists] when a configurator already exists.
func (s *AuthService) CreatePendingConfigurator() (*models.Configurator, error) {
	if !s.IsFirstEverLaunch() {
		return nil, ErrConfiguratorExists
	}

	c, err := models.NewConfigurator(models.DefaultUsername, models.DefaultPassword)
	if err != nil {
		return nil, fmt.Errorf("create pending configurator: %w", err)
	}
	s.state.Configurators = append(s.state.Configurators, c)

	s.log.Debug().Msg("pending configurator created with default credentials")
	return c, nil
}

// CompleteRegistration assigns personal credentials to a pending configurator
// and marks registration as complete, irreversibly. Username uniqueness is
// enforced across all other configurators (case-insensitive); a collision
// fails with [ErrDuplicateUsername] and leaves the configurator untouched.
func (s *AuthService) CompleteRegistration(configurator *models.Configurator, newUsername, newPassword string) error {
	trimmed := strings.TrimSpace(newUsername)
	for _, c := range s.state.Configurators {
		if c != configurator && strings.EqualFold(c.Username(), trimmed) {
			return fmt.Errorf("%w: %q", ErrDuplicateUsername, trimmed)
		}
	}

	if err := configurator.SetPersonalCredentials(newUsername, newPassword); err != nil {
		return fmt.Errorf("complete registration: %w", err)
	}

	s.log.Debug().Str("username", configurator.Username()).Msg("registration completed")
	return nil
}

// Authenticate finds the first configurator matching the supplied
// credentials (username case-insensitive after trim, password exact).
// Fails with [ErrAuthenticationFailed] when none match.
func (s *AuthService) Authenticate(username, password string) (*models.Configurator, error) {
	for _, c := range s.state.Configurators {
		if c.Authenticate(username, password) {
			return c, nil
		}
	}
	return nil, ErrAuthenticationFailed
}
