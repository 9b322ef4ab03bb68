// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package config

// Snapshot storage drivers selectable via [Storage.Driver].
const (
	// DriverFile persists the whole application state as one JSON document.
	DriverFile = "file"

	// DriverSQLite persists the whole application state in one SQLite
	// database file.
	DriverSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for
// go-taxonomy-admin. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json      — key in the optional JSON configuration file.
type StructuredConfig struct {
	// Storage holds configuration for the snapshot persistence backend.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_" json:"log,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Storage groups the configuration of the snapshot store.
type Storage struct {
	// Driver selects the snapshot backend: [DriverFile] or [DriverSQLite].
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER" json:"driver"`

	// SnapshotPath is the path of the JSON snapshot file used by the file
	// driver (e.g. "appstate.json").
	// Env: STORAGE_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH" json:"snapshot_path"`

	// DSN is the SQLite database file path used by the sqlite driver
	// (e.g. "appstate.db").
	// Env: STORAGE_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum level emitted ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`

	// FilePath is where the application log is written. The interactive UI
	// owns the terminal, so logs go to a file rather than stdout; empty
	// means a "logs" file next to the executable.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH" json:"file_path"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver:       DriverFile,
			SnapshotPath: "appstate.json",
			DSN:          "appstate.db",
		},
		Log: Log{
			Level: "debug",
		},
	}
}
