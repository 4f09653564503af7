// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "email", "admin@example.com", false},
		{"empty_string", "email", "", true},
		{"whitespace_only", "email", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("password", "").
		MaxLen("password", "abcdef", 3).
		Email("email", "not-an-email").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}

func TestRequiredError(t *testing.T) {
	err := validate.RequiredError("description", "Missing required field: description")

	assert.Equal(t, "Missing required field: description", err.Message)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "description", err.Details[0].Field)
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name  string
		value any
		blank bool
	}{
		{"nil", nil, true},
		{"empty_string", "", true},
		{"spaces", "  \t", true},
		{"empty_array", []any{}, true},
		{"empty_object", map[string]any{}, true},
		{"empty_strings", []string{}, true},
		{"text", "x", false},
		{"false", false, false},
		{"zero", float64(0), false},
		{"array", []any{"go"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blank, validate.IsBlank(tt.value))
		})
	}
}
