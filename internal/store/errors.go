package store

import "errors"

// Sentinel errors returned by snapshot stores to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoSnapshot is returned by Load when no snapshot has been saved yet:
	// the snapshot file does not exist, or the database holds no state rows.
	// Callers treat this as "first launch" and start from an empty state.
	ErrNoSnapshot = errors.New("no snapshot was saved yet")

	// ErrSnapshotVersion is returned when a snapshot was written by an
	// incompatible format version and cannot be loaded safely.
	ErrSnapshotVersion = errors.New("unsupported snapshot version")

	// ErrCorruptSnapshot is returned when a snapshot exists but cannot be
	// decoded or violates a model invariant during restore.
	ErrCorruptSnapshot = errors.New("snapshot is corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by the
// SQLite store when a SQL-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// result-set iteration fails.
	ErrScanningRows = errors.New("failed to scan snapshot rows")
)
