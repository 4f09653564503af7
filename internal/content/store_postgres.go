// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/makebyjordan/mbj/internal/platform/database/schema"
	"github.com/makebyjordan/mbj/internal/platform/dberr"
)

var errNoColumns = errors.New("record has no known columns")

// PostgresRepository stores records of one table. Rows travel as JSON:
// to_jsonb on the way out, jsonb_populate_record on the way in, so column
// types are converted by Postgres rather than mapped in Go.
type PostgresRepository struct {
	db    *sql.DB
	table *schema.Table
}

func NewPostgresRepository(db *sql.DB, table *schema.Table) *PostgresRepository {
	return &PostgresRepository{db: db, table: table}
}

func (repository *PostgresRepository) List(context context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT to_jsonb(t) FROM %s AS t ORDER BY t.%s DESC`,
		repository.table.Ident(), schema.Quote(schema.ColumnCreatedAt))

	rows, err := repository.db.QueryContext(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, repository.action("list"))
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, dberr.Wrap(err, repository.action("scan"))
		}

		record, err := decodeRecord(raw)
		if err != nil {
			return nil, dberr.Wrap(err, repository.action("decode"))
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, repository.action("list"))
	}
	return records, nil
}

func (repository *PostgresRepository) Get(context context.Context, id string) (Record, error) {
	query := fmt.Sprintf(`SELECT to_jsonb(t) FROM %s AS t WHERE t.%s = $1`,
		repository.table.Ident(), schema.Quote(schema.ColumnID))

	return repository.queryRecord(context, "get", query, id)
}

func (repository *PostgresRepository) Insert(context context.Context, record Record) (Record, error) {
	columns := repository.table.Known(record)
	if len(columns) == 0 {
		return nil, dberr.Wrap(errNoColumns, repository.action("insert"))
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return nil, dberr.Wrap(err, repository.action("encode"))
	}

	list := quoteList(columns)
	query := fmt.Sprintf(`INSERT INTO %s AS t (%s) SELECT %s FROM jsonb_populate_record(NULL::%s, $1::jsonb) RETURNING to_jsonb(t)`,
		repository.table.Ident(), list, list, repository.table.Ident())

	return repository.queryRecord(context, "insert", query, string(payload))
}

func (repository *PostgresRepository) Update(context context.Context, id string, patch Record) (Record, error) {
	assignments := repository.assignments(patch, "r")
	if len(assignments) == 0 {
		return repository.Get(context, id)
	}

	payload, err := json.Marshal(patch)
	if err != nil {
		return nil, dberr.Wrap(err, repository.action("encode"))
	}

	query := fmt.Sprintf(`UPDATE %s AS t SET %s FROM jsonb_populate_record(NULL::%s, $2::jsonb) AS r WHERE t.%s = $1 RETURNING to_jsonb(t)`,
		repository.table.Ident(), strings.Join(assignments, ", "), repository.table.Ident(), schema.Quote(schema.ColumnID))

	return repository.queryRecord(context, "update", query, id, string(payload))
}

func (repository *PostgresRepository) Upsert(context context.Context, id string, record Record) (Record, error) {
	row := record.Clone()
	row[schema.ColumnID] = id

	payload, err := json.Marshal(row)
	if err != nil {
		return nil, dberr.Wrap(err, repository.action("encode"))
	}

	assignments := repository.assignments(row, "EXCLUDED")
	if len(assignments) == 0 {
		assignments = []string{fmt.Sprintf("%s = EXCLUDED.%s", schema.Quote(schema.ColumnID), schema.Quote(schema.ColumnID))}
	}

	list := quoteList(repository.table.Known(row))
	query := fmt.Sprintf(`INSERT INTO %s AS t (%s) SELECT %s FROM jsonb_populate_record(NULL::%s, $1::jsonb) ON CONFLICT (%s) DO UPDATE SET %s RETURNING to_jsonb(t)`,
		repository.table.Ident(), list, list, repository.table.Ident(), schema.Quote(schema.ColumnID), strings.Join(assignments, ", "))

	return repository.queryRecord(context, "upsert", query, string(payload))
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		repository.table.Ident(), schema.Quote(schema.ColumnID))

	result, err := repository.db.ExecContext(context, query, id)
	if err != nil {
		return dberr.Wrap(err, repository.action("delete"))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dberr.Wrap(err, repository.action("delete"))
	}
	if affected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// assignments builds `"col" = <source>."col"` for every known column of the
// record except id. updatedAt is refreshed when the record does not carry it.
func (repository *PostgresRepository) assignments(record Record, source string) []string {
	columns := repository.table.Known(record, schema.ColumnID)

	assignments := make([]string, 0, len(columns)+1)
	for _, column := range columns {
		quoted := schema.Quote(column)
		assignments = append(assignments, fmt.Sprintf("%s = %s.%s", quoted, source, quoted))
	}

	if _, carried := record[schema.ColumnUpdatedAt]; !carried && repository.table.Has(schema.ColumnUpdatedAt) {
		assignments = append(assignments, fmt.Sprintf("%s = now()", schema.Quote(schema.ColumnUpdatedAt)))
	}
	return assignments
}

func (repository *PostgresRepository) queryRecord(context context.Context, action, query string, args ...any) (Record, error) {
	var raw []byte
	if err := repository.db.QueryRowContext(context, query, args...).Scan(&raw); err != nil {
		return nil, dberr.Wrap(err, repository.action(action))
	}

	record, err := decodeRecord(raw)
	if err != nil {
		return nil, dberr.Wrap(err, repository.action("decode"))
	}
	return record, nil
}

func (repository *PostgresRepository) action(verb string) string {
	return verb + "_" + strings.ToLower(repository.table.Name)
}

func quoteList(columns []string) string {
	quoted := make([]string, len(columns))
	for index, column := range columns {
		quoted[index] = schema.Quote(column)
	}
	return strings.Join(quoted, ", ")
}

// decodeRecord keeps numbers as json.Number so NUMERIC columns keep their scale.
func decodeRecord(raw []byte) (Record, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var record Record
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
