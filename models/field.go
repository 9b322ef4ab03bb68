package models

import (
	"fmt"
	"strings"
)

// FieldKind identifies which variant of field a [Field] value is.
type FieldKind int

const (
	// KindBase marks one of the eight fixed fields shared by every category,
	// set once and never altered.
	KindBase FieldKind = 1

	// KindCommon marks a field shared by all categories, freely managed by
	// the configurator.
	KindCommon FieldKind = 2

	// KindSpecific marks a field belonging to exactly one category.
	KindSpecific FieldKind = 3
)

// Label returns the human-readable label for the field kind.
func (k FieldKind) Label() string {
	switch k {
	case KindBase:
		return "Base"
	case KindCommon:
		return "Common"
	case KindSpecific:
		return "Specific"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field is the capability shared by all field variants. The base variant is
// the single case whose SetMandatory always fails.
type Field interface {
	Name() string
	Type() FieldType
	Mandatory() bool
	SetMandatory(mandatory bool) error
	Kind() FieldKind
}

// fieldData carries the attributes shared by every field variant.
//
// Invariant: name is non-empty and trimmed; fieldType is valid.
type fieldData struct {
	name      string
	fieldType FieldType
	mandatory bool
}

func newFieldData(name string, fieldType FieldType, mandatory bool) (fieldData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return fieldData{}, fmt.Errorf("field: %w", ErrEmptyName)
	}
	if !fieldType.Valid() {
		return fieldData{}, fmt.Errorf("field %q: %w: %d", name, ErrInvalidFieldType, int(fieldType))
	}
	return fieldData{name: name, fieldType: fieldType, mandatory: mandatory}, nil
}

// Name returns the trimmed field name.
func (f *fieldData) Name() string { return f.name }

// Type returns the data type of the field.
func (f *fieldData) Type() FieldType { return f.fieldType }

// Mandatory reports whether the field must be filled in when used.
func (f *fieldData) Mandatory() bool { return f.mandatory }
