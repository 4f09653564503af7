// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"postgres://u:p@db:5432/mbj", "pgx5://u:p@db:5432/mbj"},
		{"postgresql://u:p@db/mbj?sslmode=disable", "pgx5://u:p@db/mbj?sslmode=disable"},
		{"pgx5://db/mbj", "pgx5://db/mbj"},
		{"host=db dbname=mbj", "host=db dbname=mbj"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.input))
	}
}

func TestEmbeddedMigrations_Paired(t *testing.T) {
	names, err := fs.Glob(migrationFiles, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, name := range names {
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %s", name)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrations_CreateRegistryTables(t *testing.T) {
	body, err := fs.ReadFile(migrationFiles, "sql/000001_content_tables.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"Project", "Note", "Protocol", "Tool", "Link", "Service", "HeroContent", "AboutContent"} {
		assert.Contains(t, string(body), `CREATE TABLE IF NOT EXISTS "`+table+`"`)
	}
}
