package models

import (
	"fmt"
	"strings"
)

// Configurator is the single administrative role of the system.
//
// A configurator is created with placeholder default credentials and
// transitions out of first-login exactly once, when personal credentials are
// assigned via [Configurator.SetPersonalCredentials].
//
// Invariant: username and password are always non-empty. Passwords are stored
// and compared as plain text; hardening the credential model is explicitly
// out of scope.
type Configurator struct {
	username   string
	password   string
	firstLogin bool
}

// NewConfigurator creates a configurator pending first-login registration.
func NewConfigurator(username, password string) (*Configurator, error) {
	c := &Configurator{firstLogin: true}
	if err := c.setCredentials(username, password); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreConfigurator rebuilds a configurator from persisted attributes,
// including an already-completed firstLogin transition. Used only when
// loading a snapshot.
func RestoreConfigurator(username, password string, firstLogin bool) (*Configurator, error) {
	c := &Configurator{firstLogin: firstLogin}
	if err := c.setCredentials(username, password); err != nil {
		return nil, err
	}
	return c, nil
}

// Username returns the current username.
func (c *Configurator) Username() string { return c.username }

// Password returns the stored plain-text password. Exposed for snapshot
// persistence only.
func (c *Configurator) Password() string { return c.password }

// FirstLogin reports whether first-login registration is still pending.
func (c *Configurator) FirstLogin() bool { return c.firstLogin }

// Authenticate verifies the supplied credentials: username is compared
// case-insensitively after trimming, password must match exactly.
func (c *Configurator) Authenticate(username, password string) bool {
	return strings.EqualFold(c.username, strings.TrimSpace(username)) && c.password == password
}

// SetPersonalCredentials replaces the placeholder credentials and marks
// first-login registration as complete. The transition is irreversible;
// calling it on an already-registered configurator fails with
// [ErrRegistrationCompleted].
func (c *Configurator) SetPersonalCredentials(newUsername, newPassword string) error {
	if !c.firstLogin {
		return ErrRegistrationCompleted
	}
	if err := c.setCredentials(newUsername, newPassword); err != nil {
		return err
	}
	c.firstLogin = false
	return nil
}

func (c *Configurator) setCredentials(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("configurator: %w", ErrEmptyName)
	}
	if password == "" {
		return fmt.Errorf("configurator: %w", ErrEmptyPassword)
	}
	c.username = username
	c.password = password
	return nil
}
