// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// InlinePrefix marks a form-submitted image carried inside a JSON string.
const InlinePrefix = "data:image/"

// ErrMalformedInline is returned when a value does not follow
// data:<mime>;base64,<payload> or its payload is not valid base64.
var ErrMalformedInline = errors.New("media: malformed inline image")

var inlinePattern = regexp.MustCompile(`(?s)^data:([A-Za-z0-9!#$&^_.+-]+/[A-Za-z0-9!#$&^_.+-]+);base64,(.*)$`)

// Payload is a decoded inline image.
type Payload struct {
	Data     []byte
	MimeType string
}

// IsInlineImage reports whether value is a string carrying an inline image.
// Any other value, including plain URLs, is passed through by callers.
func IsInlineImage(value any) bool {
	text, ok := value.(string)
	return ok && strings.HasPrefix(text, InlinePrefix)
}

// Decode parses a data URL and decodes its base64 payload.
func Decode(value string) (Payload, error) {
	match := inlinePattern.FindStringSubmatch(value)
	if match == nil {
		return Payload{}, ErrMalformedInline
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(match[2]))
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformedInline, err)
	}

	return Payload{Data: data, MimeType: strings.ToLower(match[1])}, nil
}

var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/avif":    ".avif",
	"image/svg+xml": ".svg",
	"image/x-icon":  ".ico",
}

// Extension returns the file extension for a MIME type, derived from its
// subtype when the type is not a well-known image format.
func Extension(mimeType string) string {
	mimeType = strings.ToLower(mimeType)
	if ext, found := extensions[mimeType]; found {
		return ext
	}

	_, subtype, _ := strings.Cut(mimeType, "/")
	subtype, _, _ = strings.Cut(subtype, "+")
	subtype = strings.Map(func(char rune) rune {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') {
			return char
		}
		return -1
	}, subtype)

	if subtype == "" {
		return ".bin"
	}
	return "." + subtype
}
