// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// fileSnapshotStore keeps the snapshot in a single JSON file. Every Save
// rewrites the file completely.
type fileSnapshotStore struct {
	path   string
	logger *logger.Logger
}

// NewFileSnapshotStore constructs a [SnapshotStore] backed by a JSON file at
// the given path.
func NewFileSnapshotStore(path string, log *logger.Logger) SnapshotStore {
	log.Debug().Str("path", path).Msg("creating file snapshot store")
	return &fileSnapshotStore{path: path, logger: log}
}

func (f *fileSnapshotStore) Save(_ context.Context, state *models.AppState) error {
	payload, err := json.MarshalIndent(snapshotFromState(state), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	if err = os.WriteFile(f.path, payload, 0o600); err != nil {
		f.logger.Err(err).Str("func", "fileSnapshotStore.Save").Str("path", f.path).Msg("failed to write snapshot file")
		return fmt.Errorf("write snapshot file: %w", err)
	}

	f.logger.Debug().Str("path", f.path).Int("bytes", len(payload)).Msg("snapshot saved")
	return nil
}

func (f *fileSnapshotStore) Load(_ context.Context) (*models.AppState, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		f.logger.Err(err).Str("func", "fileSnapshotStore.Load").Str("path", f.path).Msg("failed to read snapshot file")
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var s snapshot
	if err = json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: decode snapshot file: %w", ErrCorruptSnapshot, err)
	}

	return s.toState()
}
