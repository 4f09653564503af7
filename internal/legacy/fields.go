// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package legacy

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/makebyjordan/mbj/pkg/convert"
)

// Fields reads typed values out of a legacy document.
//
// Absent values default to nil for scalars and to an empty slice for
// collections. The first value of the wrong type is recorded and returned by
// [Fields.Err]; later reads keep returning defaults so a transform can be
// written straight through and checked once.
type Fields struct {
	data map[string]any
	err  error
}

func NewFields(data map[string]any) *Fields {
	return &Fields{data: data}
}

// Err returns the first type error.
func (f *Fields) Err() error { return f.err }

// Raw returns the value as stored.
func (f *Fields) Raw(key string) any {
	return f.data[key]
}

// String returns the string at key or nil.
func (f *Fields) String(key string) any {
	switch typed := f.data[key].(type) {
	case nil:
		return nil
	case string:
		return typed
	default:
		f.fail(key, "string", typed)
		return nil
	}
}

// Strings returns a list of strings. A comma separated string is split.
func (f *Fields) Strings(key string) []string {
	switch typed := f.data[key].(type) {
	case nil:
		return []string{}
	case []string:
		return append([]string{}, typed...)
	case string:
		values := []string{}
		for _, part := range strings.Split(typed, ",") {
			if part = strings.TrimSpace(part); part != "" {
				values = append(values, part)
			}
		}
		return values
	case []any:
		values := make([]string, 0, len(typed))
		for _, item := range typed {
			text, ok := item.(string)
			if !ok {
				f.fail(key, "list of strings", item)
				return []string{}
			}
			values = append(values, text)
		}
		return values
	default:
		f.fail(key, "list of strings", typed)
		return []string{}
	}
}

// List returns an array value, such as a list of objects.
func (f *Fields) List(key string) []any {
	switch typed := f.data[key].(type) {
	case nil:
		return []any{}
	case []any:
		return typed
	default:
		f.fail(key, "list", typed)
		return []any{}
	}
}

// Bool returns the boolean at key, false when absent. Strings such as
// "true" or "1" are accepted.
func (f *Fields) Bool(key string) bool {
	switch typed := f.data[key].(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return convert.ToBool(typed)
	default:
		f.fail(key, "boolean", typed)
		return false
	}
}

// Int returns the integer at key, zero when absent. Numeric strings are accepted.
func (f *Fields) Int(key string) int64 {
	value, found := f.data[key]
	if !found || value == nil {
		return 0
	}

	if text, isText := value.(string); isText {
		value = convert.ToFloat64(text)
	}

	number, ok := toFloat(value)
	if !ok || number != math.Trunc(number) {
		f.fail(key, "integer", value)
		return 0
	}
	return int64(number)
}

// Number returns a decimal value at key as a json.Number, or nil. Numeric
// strings are accepted.
func (f *Fields) Number(key string) any {
	value, found := f.data[key]
	if !found || value == nil {
		return nil
	}

	if text, ok := value.(string); ok {
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
		value = json.Number(text)
	}

	number, ok := toFloat(value)
	if !ok {
		f.fail(key, "number", value)
		return nil
	}
	if typed, isNumber := value.(json.Number); isNumber {
		return typed
	}
	return json.Number(fmt.Sprint(number))
}

// Time normalizes the timestamp at key, using fallback when absent.
func (f *Fields) Time(key string, fallback time.Time) time.Time {
	return ParseTimestamp(f.data[key]).Resolve(fallback)
}

func (f *Fields) fail(key, expected string, got any) {
	if f.err == nil {
		f.err = fmt.Errorf("field %q: expected %s, got %T", key, expected, got)
	}
}
