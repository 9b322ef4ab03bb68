package models

// BaseField is one of the eight fixed fields shared by every category.
// Base fields are always mandatory and immutable after creation.
type BaseField struct {
	fieldData
}

// NewBaseField creates a base field with the mandatory flag permanently set.
func NewBaseField(name string, fieldType FieldType) (*BaseField, error) {
	data, err := newFieldData(name, fieldType, true)
	if err != nil {
		return nil, err
	}
	return &BaseField{fieldData: data}, nil
}

// SetMandatory always fails with [ErrBaseFieldImmutable].
func (f *BaseField) SetMandatory(bool) error {
	return ErrBaseFieldImmutable
}

// Kind returns [KindBase].
func (f *BaseField) Kind() FieldKind { return KindBase }
