// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"STORAGE_DRIVER":        "sqlite",
		"STORAGE_SNAPSHOT_PATH": "/var/data/appstate.json",
		"STORAGE_DATABASE_URI":  "/var/data/appstate.db",

		"LOG_LEVEL":     "info",
		"LOG_FILE_PATH": "/var/log/taxadmin.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "/var/data/appstate.json", cfg.Storage.SnapshotPath)
	assert.Equal(t, "/var/data/appstate.db", cfg.Storage.DSN)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/var/log/taxadmin.log", cfg.Log.FilePath)
}

func TestParseEnv_NoVariablesSet(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}
