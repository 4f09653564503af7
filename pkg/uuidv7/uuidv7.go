// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// New content records get a UUIDv7 primary key unless the caller supplies one
// (migrated records keep their legacy identifiers). Time ordering keeps the
// primary key index append-mostly in PostgreSQL.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// # Safety
//
// It panics only if the OS random source is unavailable. OS entropy failure is
// an unrecoverable system-level error.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}
