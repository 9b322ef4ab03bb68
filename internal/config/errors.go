package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownStorageDriver indicates a storage driver other than "file"
	// or "sqlite".
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
	// ErrInvalidStorageConfigs indicates invalid snapshot storage settings
	// (for example, an empty path for the selected driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
