// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/platform/database/schema"
	"github.com/makebyjordan/mbj/internal/registry"
)

func TestCheckTable(t *testing.T) {
	complete := schema.NewTable("Project", "id", "title", "imageUrl", "createdAt", "updatedAt")
	assert.NoError(t, content.CheckTable(projectRoute, complete))

	partial := schema.NewTable("Project", "id", "title")
	err := content.CheckTable(projectRoute, partial)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"imageUrl"`)
	assert.Contains(t, err.Error(), `"createdAt"`)
}

func columnRows(columns ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"column_name", "data_type"})
	for _, column := range columns {
		rows.AddRow(column, "text")
	}
	return rows
}

func TestResolve(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta("FROM information_schema.columns")
	mock.ExpectQuery(query).WithArgs("Note").
		WillReturnRows(columnRows("id", "title", "description", "createdAt", "updatedAt"))
	mock.ExpectQuery(query).WithArgs("HeroContent").
		WillReturnRows(columnRows("id", "title", "imageUrl", "createdAt", "updatedAt"))

	repositories, err := content.Resolve(context.Background(), db, []registry.RouteConfig{noteRoute, heroRoute})
	require.NoError(t, err)

	assert.Len(t, repositories, 2)
	assert.Contains(t, repositories, "Note")
	assert.Contains(t, repositories, "HeroContent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_ReportsEveryBrokenRoute(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := regexp.QuoteMeta("FROM information_schema.columns")
	mock.ExpectQuery(query).WithArgs("Note").WillReturnRows(columnRows())
	mock.ExpectQuery(query).WithArgs("Project").WillReturnRows(columnRows("id", "createdAt"))

	_, err = content.Resolve(context.Background(), db, []registry.RouteConfig{noteRoute, projectRoute})

	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrTableNotFound)
	assert.Contains(t, err.Error(), "route Project")
}
