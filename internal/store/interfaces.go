package store

import (
	"context"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// SnapshotStore persists the whole application state as one snapshot.
//
// Save overwrites whatever snapshot exists with a complete serialization of
// state; there are no partial writes. Load rebuilds the state from the last
// saved snapshot and fails with [ErrNoSnapshot] when nothing has been saved
// yet.
type SnapshotStore interface {
	Save(ctx context.Context, state *models.AppState) error
	Load(ctx context.Context) (*models.AppState, error)
}
