package models

import "errors"

// Invariant violations reported by model constructors and mutators.
// Callers should match against these values with [errors.Is].
var (
	// ErrEmptyName is returned when a field, category or configurator name
	// is empty after trimming surrounding whitespace.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrEmptyPassword is returned when a configurator password is empty.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrInvalidFieldType is returned when a field type value is not one of
	// the declared [FieldType] constants.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrBaseFieldImmutable is returned by [BaseField.SetMandatory]: base
	// fields are always mandatory and never change after construction.
	ErrBaseFieldImmutable = errors.New("base fields are always mandatory and cannot be modified")

	// ErrRegistrationCompleted is returned when personal credentials are
	// assigned to a configurator that already completed first-login
	// registration. The transition is one-way.
	ErrRegistrationCompleted = errors.New("registration already completed")
)
