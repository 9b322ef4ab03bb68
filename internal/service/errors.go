package service

import "errors"

// Domain errors signalled by the service layer. Every operation either
// completes with its documented postcondition or fails with exactly one of
// these, wrapped with human-readable context; no operation is partially
// applied. Callers match with [errors.Is].
var (
	// ErrDuplicateUsername is returned when registration picks a username
	// already taken by another configurator (case-insensitive).
	ErrDuplicateUsername = errors.New("username is already taken")

	// ErrConfiguratorExists is returned when a pending configurator is
	// created while one already exists.
	ErrConfiguratorExists = errors.New("a configurator already exists")

	// ErrAuthenticationFailed is returned when no configurator matches the
	// supplied credentials.
	ErrAuthenticationFailed = errors.New("unknown username or wrong password")

	// ErrBaseFieldsInitialized is returned when the one-time base-field
	// initialization is invoked a second time.
	ErrBaseFieldsInitialized = errors.New("base fields are already initialized")

	// ErrDuplicateField is returned when a field creation collides with an
	// existing case-insensitive name in the same scope.
	ErrDuplicateField = errors.New("field already exists")

	// ErrFieldNotFound is returned when a referenced field is absent.
	ErrFieldNotFound = errors.New("field not found")

	// ErrDuplicateCategory is returned when a category creation collides
	// with an existing case-insensitive name.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrCategoryNotFound is returned when a referenced category is absent.
	ErrCategoryNotFound = errors.New("category not found")
)
