package models

import "fmt"

// FieldType defines the data type of a form field. The value determines how
// the field must be filled in when a category form is used.
type FieldType int

const (
	// FieldTypeString represents free-form text.
	FieldTypeString FieldType = 1

	// FieldTypeInteger represents a whole number.
	FieldTypeInteger FieldType = 2

	// FieldTypeDecimal represents a decimal number (e.g. a fee amount).
	FieldTypeDecimal FieldType = 3

	// FieldTypeDate represents a calendar date.
	FieldTypeDate FieldType = 4

	// FieldTypeTime represents a time of day.
	FieldTypeTime FieldType = 5

	// FieldTypeBoolean represents a yes/no choice.
	FieldTypeBoolean FieldType = 6
)

// fieldTypeNames maps each FieldType to its canonical name used in
// persisted snapshots.
var fieldTypeNames = map[FieldType]string{
	FieldTypeString:  "STRING",
	FieldTypeInteger: "INTEGER",
	FieldTypeDecimal: "DECIMAL",
	FieldTypeDate:    "DATE",
	FieldTypeTime:    "TIME",
	FieldTypeBoolean: "BOOLEAN",
}

// fieldTypeLabels maps each FieldType to the label shown in the UI.
var fieldTypeLabels = map[FieldType]string{
	FieldTypeString:  "Text",
	FieldTypeInteger: "Integer",
	FieldTypeDecimal: "Decimal",
	FieldTypeDate:    "Date",
	FieldTypeTime:    "Time",
	FieldTypeBoolean: "Yes/No",
}

// AllFieldTypes returns every valid FieldType in menu order.
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeString,
		FieldTypeInteger,
		FieldTypeDecimal,
		FieldTypeDate,
		FieldTypeTime,
		FieldTypeBoolean,
	}
}

// FieldTypeFromIndex returns the FieldType matching the given 1-based menu
// index, or false if the index is out of range.
func FieldTypeFromIndex(index int) (FieldType, bool) {
	types := AllFieldTypes()
	if index < 1 || index > len(types) {
		return 0, false
	}
	return types[index-1], true
}

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	_, ok := fieldTypeNames[t]
	return ok
}

// DisplayName returns the human-readable label for t (e.g. "Yes/No").
func (t FieldType) DisplayName() string {
	if label, ok := fieldTypeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// String returns the canonical name of t (e.g. "STRING").
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// MarshalText implements [encoding.TextMarshaler]. Field types are persisted
// by canonical name so that snapshots stay readable and stable across
// releases.
func (t FieldType) MarshalText() ([]byte, error) {
	name, ok := fieldTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFieldType, int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *FieldType) UnmarshalText(text []byte) error {
	name := string(text)
	for ft, n := range fieldTypeNames {
		if n == name {
			*t = ft
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidFieldType, name)
}

// ParseFieldType converts a canonical name (e.g. "STRING") back into a
// FieldType. Used when loading persisted snapshots.
func ParseFieldType(name string) (FieldType, error) {
	var t FieldType
	if err := t.UnmarshalText([]byte(name)); err != nil {
		return 0, err
	}
	return t, nil
}
