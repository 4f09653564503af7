// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

// Package idgen provides short, URL-safe random identifiers backed by nanoid.
//
// They are used where a UUID would be noise: upload file-name suffixes and
// opaque admin session identifiers.
package idgen

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// Alphabet is lowercase only so generated names survive case-insensitive file systems.
const Alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random identifier of the given length.
func Generate(length int) (string, error) {
	id, err := nanoid.Generate(Alphabet, length)
	if err != nil {
		return "", fmt.Errorf("idgen: %w", err)
	}
	return id, nil
}
