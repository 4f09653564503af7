// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package schema_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/platform/database/schema"
)

func TestInspect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("Note").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type"}).
			AddRow("id", "text").
			AddRow("title", "text").
			AddRow("tags", "ARRAY").
			AddRow("createdAt", "timestamp with time zone"))

	table, err := schema.Inspect(context.Background(), db, "Note")
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "title", "tags", "createdAt"}, table.Columns)
	assert.True(t, table.Has("title"))
	assert.False(t, table.Has("description"))
	assert.Equal(t, "ARRAY", table.Type("tags"))
	assert.Equal(t, `"Note"`, table.Ident())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInspect_MissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WithArgs("Ghost").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type"}))

	_, err = schema.Inspect(context.Background(), db, "Ghost")
	assert.ErrorIs(t, err, schema.ErrTableNotFound)
}

func TestInspect_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns")).
		WillReturnError(errors.New("connection refused"))

	_, err = schema.Inspect(context.Background(), db, "Note")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, schema.ErrTableNotFound)
}

func TestTable_Known(t *testing.T) {
	table := schema.NewTable("Note", "id", "title", "description", "createdAt", "updatedAt")

	known := table.Known(map[string]any{
		"description": "d",
		"id":          "abc",
		"title":       "T",
		"bogus":       1,
	}, "id")

	assert.Equal(t, []string{"title", "description"}, known)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"imageUrl"`, schema.Quote("imageUrl"))
	assert.Equal(t, `"a""b"`, schema.Quote(`a"b`))
}
