// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package convert provides fault-tolerant string conversions.

Legacy documents were written by several generations of admin forms, so the same
field may hold a boolean or its string spelling, a number or a numeric string.
These helpers return the zero value instead of an error when parsing fails.

Do not use this package where malformed data must be distinguished from zero values.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {

	// If the string is empty, return false
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	// Try to parse the string as a boolean
	v, _ := strconv.ParseBool(s)
	return v
}

// ToFloat64 converts a string to a float64, swallowing errors.
func ToFloat64(s string) float64 {

	// If the string is empty, return 0
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Try to parse the string as a float64
	v, _ := strconv.ParseFloat(s, 64)

	// If parsing fails, return 0
	return v
}
