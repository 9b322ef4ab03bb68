// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package service

import (
	"fmt"
	"strings"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// FieldService owns the business rules of the mutable field collections:
// common fields shared by every category, and specific fields scoped to a
// single category. Name uniqueness is case-insensitive within each scope.
type FieldService struct {
	state *models.AppState
	log   *logger.Logger
}

// NewFieldService creates a FieldService over the shared state.
func NewFieldService(state *models.AppState, log *logger.Logger) *FieldService {
	return &FieldService{state: state, log: log}
}

// CommonFields returns the common fields in insertion order.
func (s *FieldService) CommonFields() []*models.CommonField {
	return s.state.CommonFields
}

// CommonFieldExists reports whether a common field with the given
// case-insensitive name exists.
func (s *FieldService) CommonFieldExists(name string) bool {
	return s.findCommonField(name) >= 0
}

// GetCommonField returns the common field with the given case-insensitive
// name, or [ErrFieldNotFound].
func (s *FieldService) GetCommonField(name string) (*models.CommonField, error) {
	i := s.findCommonField(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: common field %q", ErrFieldNotFound, strings.TrimSpace(name))
	}
	return s.state.CommonFields[i], nil
}

// AddCommonField creates a common field and appends it to the shared
// collection. A case-insensitive name collision fails with
// [ErrDuplicateField] and leaves the collection unchanged.
func (s *FieldService) AddCommonField(name string, fieldType models.FieldType, mandatory bool) error {
	f, err := models.NewCommonField(name, fieldType, mandatory)
	if err != nil {
		return fmt.Errorf("add common field: %w", err)
	}
	if s.CommonFieldExists(f.Name()) {
		return fmt.Errorf("%w: %q in common fields", ErrDuplicateField, f.Name())
	}

	s.state.CommonFields = append(s.state.CommonFields, f)

	s.log.Debug().Str("field", f.Name()).Stringer("type", fieldType).Msg("common field added")
	return nil
}

// RemoveCommonField deletes the common field with the given case-insensitive
// name, or fails with [ErrFieldNotFound].
func (s *FieldService) RemoveCommonField(name string) error {
	i := s.findCommonField(name)
	if i < 0 {
		return fmt.Errorf("%w: common field %q", ErrFieldNotFound, strings.TrimSpace(name))
	}

	removed := s.state.CommonFields[i].Name()
	s.state.CommonFields = append(s.state.CommonFields[:i], s.state.CommonFields[i+1:]...)

	s.log.Debug().Str("field", removed).Msg("common field removed")
	return nil
}

// SetCommonFieldMandatory toggles the mandatory flag of an existing common
// field.
func (s *FieldService) SetCommonFieldMandatory(name string, mandatory bool) error {
	f, err := s.GetCommonField(name)
	if err != nil {
		return err
	}
	if err := f.SetMandatory(mandatory); err != nil {
		return fmt.Errorf("set common field %q mandatory: %w", f.Name(), err)
	}

	s.log.Debug().Str("field", f.Name()).Bool("mandatory", mandatory).Msg("common field updated")
	return nil
}

// AddSpecificField creates a specific field inside the given category. A
// case-insensitive name collision within the category fails with
// [ErrDuplicateField] and leaves the category unchanged.
func (s *FieldService) AddSpecificField(category *models.Category, name string, fieldType models.FieldType, mandatory bool) error {
	f, err := models.NewSpecificField(name, fieldType, mandatory)
	if err != nil {
		return fmt.Errorf("add specific field: %w", err)
	}
	if !category.AddSpecificField(f) {
		return fmt.Errorf("%w: %q in category %q", ErrDuplicateField, f.Name(), category.Name())
	}

	s.log.Debug().
		Str("field", f.Name()).
		Str("category", category.Name()).
		Stringer("type", fieldType).
		Msg("specific field added")
	return nil
}

// RemoveSpecificField deletes a specific field from the given category, or
// fails with [ErrFieldNotFound].
func (s *FieldService) RemoveSpecificField(category *models.Category, name string) error {
	if !category.RemoveSpecificField(name) {
		return fmt.Errorf("%w: %q in category %q", ErrFieldNotFound, strings.TrimSpace(name), category.Name())
	}

	s.log.Debug().
		Str("field", strings.TrimSpace(name)).
		Str("category", category.Name()).
		Msg("specific field removed")
	return nil
}

// SetSpecificFieldMandatory toggles the mandatory flag of a specific field in
// the given category.
func (s *FieldService) SetSpecificFieldMandatory(category *models.Category, name string, mandatory bool) error {
	f := category.SpecificField(name)
	if f == nil {
		return fmt.Errorf("%w: %q in category %q", ErrFieldNotFound, strings.TrimSpace(name), category.Name())
	}
	if err := f.SetMandatory(mandatory); err != nil {
		return fmt.Errorf("set specific field %q mandatory: %w", f.Name(), err)
	}

	s.log.Debug().
		Str("field", f.Name()).
		Str("category", category.Name()).
		Bool("mandatory", mandatory).
		Msg("specific field updated")
	return nil
}

func (s *FieldService) findCommonField(name string) int {
	name = strings.TrimSpace(name)
	for i, f := range s.state.CommonFields {
		if strings.EqualFold(f.Name(), name) {
			return i
		}
	}
	return -1
}
