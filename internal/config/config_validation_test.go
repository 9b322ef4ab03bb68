package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "file driver with snapshot path",
			cfg:  StructuredConfig{Storage: Storage{Driver: DriverFile, SnapshotPath: "appstate.json"}},
		},
		{
			name:    "file driver without snapshot path",
			cfg:     StructuredConfig{Storage: Storage{Driver: DriverFile}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "sqlite driver with dsn",
			cfg:  StructuredConfig{Storage: Storage{Driver: DriverSQLite, DSN: "appstate.db"}},
		},
		{
			name:    "sqlite driver without dsn",
			cfg:     StructuredConfig{Storage: Storage{Driver: DriverSQLite}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "unknown driver",
			cfg:     StructuredConfig{Storage: Storage{Driver: "postgres", DSN: "x"}},
			wantErr: ErrUnknownStorageDriver,
		},
		{
			name:    "empty driver",
			cfg:     StructuredConfig{},
			wantErr: ErrUnknownStorageDriver,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, defaults().validate())
}
