package models

// CommonField is a field shared by all categories. Common fields can be
// freely added, removed and toggled by the configurator.
type CommonField struct {
	fieldData
}

// NewCommonField creates a common field.
func NewCommonField(name string, fieldType FieldType, mandatory bool) (*CommonField, error) {
	data, err := newFieldData(name, fieldType, mandatory)
	if err != nil {
		return nil, err
	}
	return &CommonField{fieldData: data}, nil
}

// SetMandatory changes whether the field must be filled in when used.
func (f *CommonField) SetMandatory(mandatory bool) error {
	f.mandatory = mandatory
	return nil
}

// Kind returns [KindCommon].
func (f *CommonField) Kind() FieldKind { return KindCommon }
