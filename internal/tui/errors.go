// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package tui

import (
	"errors"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/service"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// humanizeError maps domain errors onto the short messages shown on screen.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrAuthenticationFailed):
		return "Unknown username or wrong password"
	case errors.Is(err, service.ErrDuplicateUsername):
		return "This username is already taken, choose another one"
	case errors.Is(err, service.ErrDuplicateField):
		return "A field with this name already exists"
	case errors.Is(err, service.ErrDuplicateCategory):
		return "A category with this name already exists"
	case errors.Is(err, service.ErrFieldNotFound):
		return "Field not found"
	case errors.Is(err, service.ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, models.ErrEmptyName):
		return "Name must not be empty"
	case errors.Is(err, models.ErrEmptyPassword):
		return "Password must not be empty"
	case errors.Is(err, models.ErrBaseFieldImmutable):
		return "Base fields cannot be changed"
	default:
		return err.Error()
	}
}
