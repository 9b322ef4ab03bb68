package store

import (
	"context"
	"fmt"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/config"
	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
)

// New selects and constructs the snapshot store named by cfg.Driver. The
// sqlite driver also runs pending migrations before the store is handed out.
func New(ctx context.Context, cfg config.Storage, log *logger.Logger) (SnapshotStore, error) {
	switch cfg.Driver {
	case config.DriverFile:
		return NewFileSnapshotStore(cfg.SnapshotPath, log), nil
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return NewSQLiteSnapshotStore(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.Driver)
	}
}
