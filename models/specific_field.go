package models

// SpecificField is a field belonging to exactly one category. Its lifetime
// is bound to the owning [Category]: removing the category removes the field.
type SpecificField struct {
	fieldData
}

// NewSpecificField creates a specific field.
func NewSpecificField(name string, fieldType FieldType, mandatory bool) (*SpecificField, error) {
	data, err := newFieldData(name, fieldType, mandatory)
	if err != nil {
		return nil, err
	}
	return &SpecificField{fieldData: data}, nil
}

// SetMandatory changes whether the field must be filled in when used.
func (f *SpecificField) SetMandatory(mandatory bool) error {
	f.mandatory = mandatory
	return nil
}

// Kind returns [KindSpecific].
func (f *SpecificField) Kind() FieldKind { return KindSpecific }
