// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Driver {
	case DriverFile:
		if cfg.Storage.SnapshotPath == "" {
			return fmt.Errorf("%w: empty snapshot path", ErrInvalidStorageConfigs)
		}
	case DriverSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	return nil
}
