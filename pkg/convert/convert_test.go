// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/makebyjordan/mbj/pkg/convert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{" 1 ", true},
		{"false", false},
		{"", false},
		{"yes", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convert.ToBool(tt.input), tt.input)
	}
}

func TestToFloat64(t *testing.T) {
	assert.Equal(t, 49.5, convert.ToFloat64("49.5"))
	assert.Equal(t, 0.0, convert.ToFloat64("free"))
	assert.Equal(t, 0.0, convert.ToFloat64(""))
}
