// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Table names used by the SQLite snapshot store. Each Save replaces the
// content of all of them inside one transaction.
const (
	tableConfigurators  = "configurators"
	tableBaseFields     = "base_fields"
	tableCommonFields   = "common_fields"
	tableCategories     = "categories"
	tableSpecificFields = "specific_fields"
	tableSnapshotMeta   = "snapshot_meta"
)

// qb is the statement builder for SQLite: '?' placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertConfiguratorQuery(rec configuratorRecord) (string, []any, error) {
	query, args, err := qb.
		Insert(tableConfigurators).
		Columns("username", "password", "first_login").
		Values(rec.Username, rec.Password, rec.FirstLogin).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert configurator: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertFieldQuery covers the two flat field tables, base_fields and
// common_fields, which share the same columns.
func buildInsertFieldQuery(table string, rec fieldRecord) (string, []any, error) {
	query, args, err := qb.
		Insert(table).
		Columns("name", "type", "mandatory").
		Values(rec.Name, rec.Type.String(), rec.Mandatory).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert into %s: %w", ErrBuildingSQLQuery, table, err)
	}
	return query, args, nil
}

func buildInsertCategoryQuery(name string) (string, []any, error) {
	query, args, err := qb.
		Insert(tableCategories).
		Columns("name").
		Values(name).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert category: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertSpecificFieldQuery(categoryID int64, rec fieldRecord) (string, []any, error) {
	query, args, err := qb.
		Insert(tableSpecificFields).
		Columns("category_id", "name", "type", "mandatory").
		Values(categoryID, rec.Name, rec.Type.String(), rec.Mandatory).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert specific field: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertMetaQuery(s snapshot) (string, []any, error) {
	query, args, err := qb.
		Insert(tableSnapshotMeta).
		Columns("id", "version", "saved_at", "base_fields_locked").
		Values(1, s.Version, s.SavedAt, s.BaseFieldsLocked).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: insert snapshot meta: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectMetaQuery() (string, []any, error) {
	query, args, err := qb.
		Select("version", "saved_at", "base_fields_locked").
		From(tableSnapshotMeta).
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select snapshot meta: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectConfiguratorsQuery() (string, []any, error) {
	query, args, err := qb.
		Select("username", "password", "first_login").
		From(tableConfigurators).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select configurators: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectFieldsQuery(table string) (string, []any, error) {
	query, args, err := qb.
		Select("name", "type", "mandatory").
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select from %s: %w", ErrBuildingSQLQuery, table, err)
	}
	return query, args, nil
}

func buildSelectCategoriesQuery() (string, []any, error) {
	query, args, err := qb.
		Select("id", "name").
		From(tableCategories).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select categories: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectSpecificFieldsQuery(categoryID int64) (string, []any, error) {
	query, args, err := qb.
		Select("name", "type", "mandatory").
		From(tableSpecificFields).
		Where(sq.Eq{"category_id": categoryID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select specific fields: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllQuery(table string) (string, []any, error) {
	query, args, err := qb.Delete(table).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: delete from %s: %w", ErrBuildingSQLQuery, table, err)
	}
	return query, args, nil
}
