package models

import (
	"fmt"
	"strings"
)

// Category is a taxonomy entry owning an ordered collection of specific
// fields. Category names are unique system-wide (case-insensitive); inside a
// category no two specific fields share a case-insensitive name.
type Category struct {
	name           string
	specificFields []*SpecificField
}

// NewCategory creates a category with no specific fields.
func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category: %w", ErrEmptyName)
	}
	return &Category{name: name}, nil
}

// Name returns the trimmed category name.
func (c *Category) Name() string { return c.name }

// SpecificFields returns the category's specific fields in insertion order.
// The returned slice is a copy; membership changes go through
// [Category.AddSpecificField] and [Category.RemoveSpecificField].
func (c *Category) SpecificFields() []*SpecificField {
	out := make([]*SpecificField, len(c.specificFields))
	copy(out, c.specificFields)
	return out
}

// AddSpecificField appends field to the category. It reports false when a
// field with the same case-insensitive name is already present, leaving the
// collection unchanged.
func (c *Category) AddSpecificField(field *SpecificField) bool {
	if c.HasSpecificField(field.Name()) {
		return false
	}
	c.specificFields = append(c.specificFields, field)
	return true
}

// RemoveSpecificField removes the field with the given case-insensitive name.
// It reports false when no such field exists.
func (c *Category) RemoveSpecificField(name string) bool {
	for i, f := range c.specificFields {
		if strings.EqualFold(f.Name(), name) {
			c.specificFields = append(c.specificFields[:i], c.specificFields[i+1:]...)
			return true
		}
	}
	return false
}

// HasSpecificField reports whether a field with the given case-insensitive
// name belongs to the category.
func (c *Category) HasSpecificField(name string) bool {
	return c.SpecificField(name) != nil
}

// SpecificField returns the field with the given case-insensitive name, or
// nil when absent.
func (c *Category) SpecificField(name string) *SpecificField {
	for _, f := range c.specificFields {
		if strings.EqualFold(f.Name(), name) {
			return f
		}
	}
	return nil
}
