// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package legacy reads the document store the site used before the relational
schema.

Documents are loosely typed. [ParseTimestamp] normalizes the creation time
shapes the old store produced, and [Fields] gives transforms typed access
with empty defaults for anything absent.

Sources:

  - FirestoreSource: the live legacy project, scanned one collection at a time.
  - ExportSource: a directory of <collection>.json dumps, for offline runs.
*/
package legacy

import (
	"context"
	"errors"
)

// ErrCollectionNotFound is returned by sources that can tell a missing
// collection apart from an empty one.
var ErrCollectionNotFound = errors.New("legacy: collection not found")

// Document is one record of a legacy collection.
type Document struct {
	ID   string
	Data map[string]any
}

// Fields returns a typed reader over the document data.
func (d Document) Fields() *Fields {
	return NewFields(d.Data)
}

// Source enumerates whole collections of the legacy store.
type Source interface {
	Documents(ctx context.Context, collection string) ([]Document, error)
	Close() error
}
