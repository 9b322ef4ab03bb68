// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Luca Bertolazzi

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbertolazzi/go-taxonomy-admin/models"
)

func Test_buildInsertFieldQuery_SQLContainsParts(t *testing.T) {
	rec := fieldRecord{Name: "Notes", Type: models.FieldTypeString, Mandatory: true}

	query, args, err := buildInsertFieldQuery(tableCommonFields, rec)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into common_fields")
	require.Contains(t, q, "name")
	require.Contains(t, q, "type")
	require.Contains(t, q, "mandatory")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	// field type is stored by canonical name
	require.Len(t, args, 3)
	assert.Equal(t, "Notes", args[0])
	assert.Equal(t, "STRING", args[1])
	assert.Equal(t, true, args[2])
}

func Test_buildInsertSpecificFieldQuery(t *testing.T) {
	rec := fieldRecord{Name: "TeamSize", Type: models.FieldTypeInteger, Mandatory: false}

	query, args, err := buildInsertSpecificFieldQuery(7, rec)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into specific_fields")
	require.Contains(t, q, "category_id")

	require.Len(t, args, 4)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "TeamSize", args[1])
	assert.Equal(t, "INTEGER", args[2])
}

func Test_buildSelectQueries_OrderByInsertionID(t *testing.T) {
	// Every collection is restored in insertion order, which the
	// autoincrement id preserves.
	builders := []func() (string, []any, error){
		buildSelectConfiguratorsQuery,
		func() (string, []any, error) { return buildSelectFieldsQuery(tableBaseFields) },
		func() (string, []any, error) { return buildSelectFieldsQuery(tableCommonFields) },
		buildSelectCategoriesQuery,
		func() (string, []any, error) { return buildSelectSpecificFieldsQuery(1) },
	}

	for _, build := range builders {
		query, _, err := build()
		require.NoError(t, err)
		assert.Contains(t, strings.ToUpper(query), "ORDER BY")
	}
}

func Test_buildSelectMetaQuery(t *testing.T) {
	query, args, err := buildSelectMetaQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from snapshot_meta")
	require.Contains(t, q, "where")

	require.Len(t, args, 1)
	assert.Equal(t, 1, args[0])
}
