// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package legacy

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// TimestampKind tells which shape a legacy timestamp arrived in.
type TimestampKind int

const (
	// TimestampAbsent covers missing and unparseable values.
	TimestampAbsent TimestampKind = iota

	// TimestampNative is a time value decoded by the store client.
	TimestampNative

	// TimestampSeconds is an epoch wrapper: {seconds, nanoseconds} or the
	// underscored form produced by JSON exports.
	TimestampSeconds

	// TimestampPlain is an RFC 3339 string or epoch milliseconds.
	TimestampPlain
)

func (k TimestampKind) String() string {
	switch k {
	case TimestampNative:
		return "native"
	case TimestampSeconds:
		return "seconds"
	case TimestampPlain:
		return "plain"
	default:
		return "absent"
	}
}

// Timestamp is a normalized legacy timestamp.
type Timestamp struct {
	Kind TimestampKind
	Time time.Time
}

// ParseTimestamp classifies value and normalizes it to UTC.
func ParseTimestamp(value any) Timestamp {
	switch typed := value.(type) {
	case time.Time:
		if typed.IsZero() {
			return Timestamp{}
		}
		return Timestamp{Kind: TimestampNative, Time: typed.UTC()}
	case *time.Time:
		if typed == nil || typed.IsZero() {
			return Timestamp{}
		}
		return Timestamp{Kind: TimestampNative, Time: typed.UTC()}
	case map[string]any:
		return parseSeconds(typed)
	case string:
		return parsePlainString(typed)
	}

	if millis, ok := toFloat(value); ok {
		return Timestamp{Kind: TimestampPlain, Time: fromMillis(millis)}
	}
	return Timestamp{}
}

// Resolve returns the normalized time, or fallback when the value was absent.
func (t Timestamp) Resolve(fallback time.Time) time.Time {
	if t.Kind == TimestampAbsent {
		return fallback.UTC()
	}
	return t.Time
}

func parseSeconds(wrapper map[string]any) Timestamp {
	seconds, ok := lookupNumber(wrapper, "seconds", "_seconds")
	if !ok {
		return Timestamp{}
	}
	nanos, _ := lookupNumber(wrapper, "nanoseconds", "_nanoseconds")

	whole, fraction := math.Modf(seconds)
	moment := time.Unix(int64(whole), int64(fraction*1e9)+int64(nanos))
	return Timestamp{Kind: TimestampSeconds, Time: moment.UTC()}
}

func parsePlainString(value string) Timestamp {
	value = strings.TrimSpace(value)
	if value == "" {
		return Timestamp{}
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return Timestamp{Kind: TimestampPlain, Time: parsed.UTC()}
		}
	}

	if millis, ok := toFloat(json.Number(value)); ok {
		return Timestamp{Kind: TimestampPlain, Time: fromMillis(millis)}
	}
	return Timestamp{}
}

func lookupNumber(wrapper map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, found := wrapper[key]; found {
			return toFloat(value)
		}
	}
	return 0, false
}

func fromMillis(millis float64) time.Time {
	return time.UnixMilli(int64(millis)).UTC()
}

func toFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case json.Number:
		parsed, err := typed.Float64()
		return parsed, err == nil
	case float64:
		return typed, true
	case float32:
		return float64(typed), true
	case int:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	}
	return 0, false
}
