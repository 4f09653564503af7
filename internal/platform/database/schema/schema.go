// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

// Package schema describes content tables as they exist in the live database.
//
// # Why introspection?
//
// Content types are declared in the route registry, not in Go structs. The
// repository builds its SQL from the column list read here, so a body key that
// is not a real column can never reach a query, and a registry entry naming a
// missing table or column is caught at startup instead of on first request.
package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
)

// Well-known columns every content table carries.
const (
	ColumnID        = "id"
	ColumnCreatedAt = "createdAt"
	ColumnUpdatedAt = "updatedAt"
)

// ErrTableNotFound is returned when a table is absent from the current schema.
var ErrTableNotFound = errors.New("schema: table not found")

const columnsQuery = `SELECT column_name, data_type
FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1
ORDER BY ordinal_position`

// Table is the column layout of one content table.
type Table struct {
	// Name is the unquoted table name, e.g. "Note".
	Name string
	// Columns are in ordinal order.
	Columns []string

	types map[string]string
}

// NewTable builds a Table from a known layout. Column types are optional.
func NewTable(name string, columns ...string) *Table {
	table := &Table{Name: name, types: make(map[string]string, len(columns))}
	for _, column := range columns {
		table.Columns = append(table.Columns, column)
		table.types[column] = ""
	}
	return table
}

// Inspect reads the layout of table name from information_schema.
func Inspect(ctx context.Context, db *sql.DB, name string) (*Table, error) {
	rows, err := db.QueryContext(ctx, columnsQuery, name)
	if err != nil {
		return nil, fmt.Errorf("schema: inspect %s: %w", name, err)
	}
	defer rows.Close()

	table := &Table{Name: name, types: make(map[string]string)}
	for rows.Next() {
		var column, dataType string
		if err := rows.Scan(&column, &dataType); err != nil {
			return nil, fmt.Errorf("schema: scan %s: %w", name, err)
		}
		table.Columns = append(table.Columns, column)
		table.types[column] = dataType
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schema: inspect %s: %w", name, err)
	}

	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	return table, nil
}

// Has reports whether column exists.
func (t *Table) Has(column string) bool {
	_, ok := t.types[column]
	return ok
}

// Type returns the information_schema data_type of column, or "" when unknown.
func (t *Table) Type(column string) string {
	return t.types[column]
}

// Ident returns the quoted table identifier for SQL text.
func (t *Table) Ident() string {
	return Quote(t.Name)
}

// Known returns the keys of record that are real columns, in ordinal order.
// Keys listed in skip are left out.
func (t *Table) Known(record map[string]any, skip ...string) []string {
	known := make([]string, 0, len(record))
	for _, column := range t.Columns {
		if _, ok := record[column]; !ok || slices.Contains(skip, column) {
			continue
		}
		known = append(known, column)
	}
	return known
}

// Quote returns a safely quoted SQL identifier.
func Quote(identifier string) string {
	return pgx.Identifier{identifier}.Sanitize()
}
