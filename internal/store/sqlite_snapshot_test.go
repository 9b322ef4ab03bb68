// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/internal/logger"
	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func newMockStore(t *testing.T) (SnapshotStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewSQLiteSnapshotStore(db, logger.Nop()), mock
}

func expectDeleteAll(mock sqlmock.Sqlmock) {
	for _, table := range []string{
		tableSpecificFields,
		tableCategories,
		tableCommonFields,
		tableBaseFields,
		tableConfigurators,
		tableSnapshotMeta,
	} {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + table)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
}

func TestSQLiteSnapshotStore_Save(t *testing.T) {
	// Arrange
	s, mock := newMockStore(t)
	state := testState(t)

	mock.ExpectBegin()
	expectDeleteAll(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snapshot_meta (id,version,saved_at,base_fields_locked) VALUES (?,?,?,?)")).
		WithArgs(1, snapshotVersion, sqlmock.AnyArg(), true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO configurators (username,password,first_login) VALUES (?,?,?)")).
		WithArgs("mario", "secret", false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO base_fields (name,type,mandatory) VALUES (?,?,?)")).
		WithArgs("Title", "STRING", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO common_fields (name,type,mandatory) VALUES (?,?,?)")).
		WithArgs("Notes", "STRING", false).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO categories (name) VALUES (?)")).
		WithArgs("Tournament").
		WillReturnResult(sqlmock.NewResult(7, 1))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO specific_fields (category_id,name,type,mandatory) VALUES (?,?,?,?)")).
		WithArgs(int64(7), "TeamSize", "INTEGER", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectCommit()

	// Act
	err := s.Save(context.Background(), state)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSnapshotStore_Save_RollsBackOnInsertError(t *testing.T) {
	// Arrange
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM " + tableSpecificFields)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err := s.Save(context.Background(), models.NewAppState())

	// Assert
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSnapshotStore_Load(t *testing.T) {
	// Arrange
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, saved_at, base_fields_locked FROM snapshot_meta WHERE id = ?")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"version", "saved_at", "base_fields_locked"}).
			AddRow(snapshotVersion, time.Now().UTC(), true))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, password, first_login FROM configurators ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "first_login"}).
			AddRow("mario", "secret", false))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, type, mandatory FROM base_fields ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "type", "mandatory"}).
			AddRow("Title", "STRING", true))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, type, mandatory FROM common_fields ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "type", "mandatory"}).
			AddRow("Notes", "STRING", false))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(7), "Tournament"))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, type, mandatory FROM specific_fields WHERE category_id = ? ORDER BY id")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "type", "mandatory"}).
			AddRow("TeamSize", "INTEGER", true))

	// Act
	state, err := s.Load(context.Background())

	// Assert
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, state.Configurators, 1)
	assert.Equal(t, "mario", state.Configurators[0].Username())
	assert.True(t, state.BaseFieldsLocked)
	require.Len(t, state.BaseFields, 1)
	require.Len(t, state.CommonFields, 1)
	require.Len(t, state.Categories, 1)
	require.Len(t, state.Categories[0].SpecificFields(), 1)
	assert.Equal(t, models.FieldTypeInteger, state.Categories[0].SpecificFields()[0].Type())
}

func TestSQLiteSnapshotStore_Load_NoSnapshot(t *testing.T) {
	// Arrange
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, saved_at, base_fields_locked FROM snapshot_meta WHERE id = ?")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"version", "saved_at", "base_fields_locked"}))

	// Act
	state, err := s.Load(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrNoSnapshot)
	assert.Nil(t, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSnapshotStore_Load_WrongVersion(t *testing.T) {
	// Arrange
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT version, saved_at, base_fields_locked FROM snapshot_meta WHERE id = ?")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"version", "saved_at", "base_fields_locked"}).
			AddRow(99, time.Now().UTC(), false))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT username, password, first_login FROM configurators ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "first_login"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, type, mandatory FROM base_fields ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "type", "mandatory"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT name, type, mandatory FROM common_fields ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"name", "type", "mandatory"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM categories ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	// Act
	state, err := s.Load(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrSnapshotVersion)
	assert.Nil(t, state)
}
