package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

// sqliteSnapshotStore keeps the snapshot in a SQLite database. Save replaces
// the content of every state table inside one transaction, so readers observe
// either the previous snapshot or the new one, never a mix.
type sqliteSnapshotStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSnapshotStore constructs a [SnapshotStore] backed by the given
// migrated database connection.
func NewSQLiteSnapshotStore(db *DB, log *logger.Logger) SnapshotStore {
	log.Debug().Msg("creating sqlite snapshot store")
	return &sqliteSnapshotStore{db: db, logger: log}
}

func (s *sqliteSnapshotStore) Save(ctx context.Context, state *models.AppState) error {
	log := s.logger
	snap := snapshotFromState(state)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sqliteSnapshotStore.Save").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{
		tableSpecificFields,
		tableCategories,
		tableCommonFields,
		tableBaseFields,
		tableConfigurators,
		tableSnapshotMeta,
	} {
		if err = execBuilt(ctx, tx, func() (string, []any, error) { return buildDeleteAllQuery(table) }); err != nil {
			return err
		}
	}

	if err = execBuilt(ctx, tx, func() (string, []any, error) { return buildInsertMetaQuery(snap) }); err != nil {
		return err
	}
	for _, rec := range snap.Configurators {
		if err = execBuilt(ctx, tx, func() (string, []any, error) { return buildInsertConfiguratorQuery(rec) }); err != nil {
			return err
		}
	}
	for _, rec := range snap.BaseFields {
		if err = execBuilt(ctx, tx, func() (string, []any, error) { return buildInsertFieldQuery(tableBaseFields, rec) }); err != nil {
			return err
		}
	}
	for _, rec := range snap.CommonFields {
		if err = execBuilt(ctx, tx, func() (string, []any, error) { return buildInsertFieldQuery(tableCommonFields, rec) }); err != nil {
			return err
		}
	}
	for _, cat := range snap.Categories {
		query, args, buildErr := buildInsertCategoryQuery(cat.Name)
		if buildErr != nil {
			return buildErr
		}
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).Str("func", "sqliteSnapshotStore.Save").Str("category", cat.Name).Msg("failed to insert category")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		categoryID, idErr := res.LastInsertId()
		if idErr != nil {
			return fmt.Errorf("%w: category id: %w", ErrExecutingStatement, idErr)
		}
		for _, fr := range cat.SpecificFields {
			if err = execBuilt(ctx, tx, func() (string, []any, error) { return buildInsertSpecificFieldQuery(categoryID, fr) }); err != nil {
				return err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sqliteSnapshotStore.Save").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Msg("snapshot saved to database")
	return nil
}

func (s *sqliteSnapshotStore) Load(ctx context.Context) (*models.AppState, error) {
	log := s.logger

	snap, err := s.loadMeta(ctx)
	if err != nil {
		return nil, err
	}

	if snap.Configurators, err = s.loadConfigurators(ctx); err != nil {
		return nil, err
	}
	if snap.BaseFields, err = s.loadFields(ctx, tableBaseFields); err != nil {
		return nil, err
	}
	if snap.CommonFields, err = s.loadFields(ctx, tableCommonFields); err != nil {
		return nil, err
	}
	if snap.Categories, err = s.loadCategories(ctx); err != nil {
		return nil, err
	}

	log.Debug().
		Int("configurators", len(snap.Configurators)).
		Int("categories", len(snap.Categories)).
		Msg("snapshot loaded from database")
	return snap.toState()
}

func (s *sqliteSnapshotStore) loadMeta(ctx context.Context) (snapshot, error) {
	query, args, err := buildSelectMetaQuery()
	if err != nil {
		return snapshot{}, err
	}

	var snap snapshot
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&snap.Version, &snap.SavedAt, &snap.BaseFieldsLocked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return snapshot{}, ErrNoSnapshot
		}
		return snapshot{}, fmt.Errorf("%w: snapshot meta: %w", ErrScanningRows, err)
	}
	return snap, nil
}

func (s *sqliteSnapshotStore) loadConfigurators(ctx context.Context) ([]configuratorRecord, error) {
	query, args, err := buildSelectConfiguratorsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	var recs []configuratorRecord
	for rows.Next() {
		var rec configuratorRecord
		if err = rows.Scan(&rec.Username, &rec.Password, &rec.FirstLogin); err != nil {
			return nil, fmt.Errorf("%w: configurators: %w", ErrScanningRows, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (s *sqliteSnapshotStore) loadFields(ctx context.Context, table string) ([]fieldRecord, error) {
	query, args, err := buildSelectFieldsQuery(table)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	recs, err := scanFieldRecords(rows, table)
	if err != nil {
		return nil, err
	}
	return recs, rows.Err()
}

func (s *sqliteSnapshotStore) loadCategories(ctx context.Context) ([]categoryRecord, error) {
	query, args, err := buildSelectCategoriesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	type catRow struct {
		id   int64
		name string
	}
	var catRows []catRow
	for rows.Next() {
		var r catRow
		if err = rows.Scan(&r.id, &r.name); err != nil {
			return nil, fmt.Errorf("%w: categories: %w", ErrScanningRows, err)
		}
		catRows = append(catRows, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: categories: %w", ErrScanningRows, err)
	}

	var recs []categoryRecord
	for _, r := range catRows {
		fields, err := s.loadSpecificFields(ctx, r.id)
		if err != nil {
			return nil, err
		}
		recs = append(recs, categoryRecord{Name: r.name, SpecificFields: fields})
	}
	return recs, nil
}

func (s *sqliteSnapshotStore) loadSpecificFields(ctx context.Context, categoryID int64) ([]fieldRecord, error) {
	query, args, err := buildSelectSpecificFieldsQuery(categoryID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer rows.Close()

	recs, err := scanFieldRecords(rows, tableSpecificFields)
	if err != nil {
		return nil, err
	}
	return recs, rows.Err()
}

// scanFieldRecords reads (name, type, mandatory) rows, decoding the type from
// its canonical name.
func scanFieldRecords(rows *sql.Rows, table string) ([]fieldRecord, error) {
	var recs []fieldRecord
	for rows.Next() {
		var (
			rec      fieldRecord
			typeName string
		)
		if err := rows.Scan(&rec.Name, &typeName, &rec.Mandatory); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrScanningRows, table, err)
		}
		t, err := models.ParseFieldType(typeName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s field %q: %w", ErrCorruptSnapshot, table, rec.Name, err)
		}
		rec.Type = t
		recs = append(recs, rec)
	}
	return recs, nil
}

// execBuilt builds a query and executes it on the transaction, mapping
// failures onto the package sentinels.
func execBuilt(ctx context.Context, tx *sql.Tx, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
