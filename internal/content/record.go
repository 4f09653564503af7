// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content

import (
	"maps"

	"github.com/makebyjordan/mbj/internal/platform/database/schema"
	"github.com/makebyjordan/mbj/internal/platform/validate"
)

// Record is one content item as a JSON object. Keys are column names.
type Record map[string]any

// ID returns the record identifier, or "" when absent or not a string.
func (record Record) ID() string {
	return record.String(schema.ColumnID)
}

// String returns field when it holds a string.
func (record Record) String(field string) string {
	value, _ := record[field].(string)
	return value
}

// Present reports whether field holds a non-blank value.
func (record Record) Present(field string) bool {
	return !validate.IsBlank(record[field])
}

// Clone returns a shallow copy.
func (record Record) Clone() Record {
	if record == nil {
		return Record{}
	}
	return maps.Clone(record)
}
