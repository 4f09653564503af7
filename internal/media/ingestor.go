// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package media bridges inline image payloads submitted by the admin forms and
durable public files.

# Lifecycle

  - [Ingestor.Ingest] decodes a data URL and persists it, returning the public URL.
  - [Ingestor.Prepare] verifies and downscales a payload without writing it, so
    callers can reject a bad upload before touching the file it replaces.
  - [Ingestor.Remove] deletes a previously persisted file when its owning record
    replaces or drops it. Removal is best-effort and never fails the caller.

Generated filenames combine a millisecond timestamp with a random suffix. They
are not derived from content, so identical uploads are stored twice.
*/
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/makebyjordan/mbj/internal/platform/constants"
	"github.com/makebyjordan/mbj/pkg/idgen"
)

// ErrUnreadableImage is returned when a raster payload cannot be decoded.
var ErrUnreadableImage = errors.New("media: unreadable image")

// jpegQuality is used when a downscaled JPEG is re-encoded.
const jpegQuality = 85

// Options configures an [Ingestor].
type Options struct {
	// UploadsRoot is the first path segment of every public URL ("uploads").
	UploadsRoot string

	// PublicBaseURL prefixes URLs for remote backends. Empty yields site-relative URLs.
	PublicBaseURL string

	// MaxWidth downscales wider JPEG and PNG payloads. Zero disables resizing.
	MaxWidth int
}

// Ingestor persists decoded payloads through a [Store] and maps them to URLs.
type Ingestor struct {
	store    Store
	base     string
	maxWidth int
	logger   *slog.Logger
	now      func() time.Time
}

// NewIngestor creates an ingestor writing through store.
func NewIngestor(store Store, options Options, logger *slog.Logger) *Ingestor {
	root := strings.Trim(options.UploadsRoot, "/")
	if root == "" {
		root = constants.DefaultUploadsRoot
	}

	return &Ingestor{
		store:    store,
		base:     strings.TrimRight(options.PublicBaseURL, "/") + "/" + root,
		maxWidth: options.MaxWidth,
		logger:   logger,
		now:      time.Now,
	}
}

// Ingest decodes an inline image and persists it under folder with a
// generated filename.
func (ingestor *Ingestor) Ingest(ctx context.Context, value, folder string) (string, error) {
	payload, err := Decode(value)
	if err != nil {
		return "", err
	}
	return ingestor.Persist(ctx, payload, folder, "")
}

// Persist writes payload to <folder>/<filename> and returns its public URL.
// An empty filename is generated from the current time, a random suffix and
// the MIME type's extension. An existing file with the same name is overwritten.
func (ingestor *Ingestor) Persist(ctx context.Context, payload Payload, folder, filename string) (string, error) {
	if filename == "" {
		generated, err := ingestor.filename(payload.MimeType)
		if err != nil {
			return "", err
		}
		filename = generated
	}

	prepared, err := ingestor.Prepare(payload)
	if err != nil {
		return "", err
	}
	data := prepared.Data

	key := folder + "/" + filename
	if err := ingestor.store.Put(ctx, key, data, payload.MimeType); err != nil {
		return "", err
	}

	ingestor.logger.DebugContext(ctx, "image_persisted",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return ingestor.base + "/" + key, nil
}

// Owns reports whether url points into the managed uploads area.
func (ingestor *Ingestor) Owns(url string) bool {
	return strings.HasPrefix(url, ingestor.base+"/")
}

// Remove deletes the file behind url. Foreign URLs are ignored, a missing file
// is not an error, and any other failure is logged but not returned.
func (ingestor *Ingestor) Remove(ctx context.Context, url string) {
	if !ingestor.Owns(url) {
		return
	}

	key := strings.TrimPrefix(url, ingestor.base+"/")
	err := ingestor.store.Delete(ctx, key)

	switch {
	case err == nil:
		ingestor.logger.DebugContext(ctx, "image_removed", slog.String("key", key))
	case errors.Is(err, os.ErrNotExist):
		ingestor.logger.DebugContext(ctx, "image_already_absent", slog.String("key", key))
	default:
		ingestor.logger.WarnContext(ctx, "image_remove_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

// Prepare returns payload as it would be stored: raster data is verified and
// wide JPEG and PNG images are downscaled. Preparing an already prepared
// payload returns it unchanged.
func (ingestor *Ingestor) Prepare(payload Payload) (Payload, error) {
	data, err := ingestor.prepare(payload)
	if err != nil {
		return Payload{}, err
	}
	return Payload{Data: data, MimeType: payload.MimeType}, nil
}

func (ingestor *Ingestor) filename(mimeType string) (string, error) {
	suffix, err := idgen.Generate(constants.UploadSuffixLength)
	if err != nil {
		return "", fmt.Errorf("media: filename suffix: %w", err)
	}
	return fmt.Sprintf("%d-%s%s", ingestor.now().UnixMilli(), suffix, Extension(mimeType)), nil
}

// prepare verifies raster payloads and downscales wide JPEG and PNG images,
// keeping their format. Other types are stored as submitted.
func (ingestor *Ingestor) prepare(payload Payload) ([]byte, error) {
	switch payload.MimeType {
	case "image/jpeg", "image/jpg", "image/png":
	case "image/gif", "image/webp":
		if _, _, err := image.DecodeConfig(bytes.NewReader(payload.Data)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
		}
		return payload.Data, nil
	default:
		return payload.Data, nil
	}

	config, _, err := image.DecodeConfig(bytes.NewReader(payload.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	if ingestor.maxWidth <= 0 || config.Width <= ingestor.maxWidth {
		return payload.Data, nil
	}

	source, format, err := image.Decode(bytes.NewReader(payload.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	height := config.Height * ingestor.maxWidth / config.Width
	if height < 1 {
		height = 1
	}
	scaled := image.NewRGBA(image.Rect(0, 0, ingestor.maxWidth, height))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), source, source.Bounds(), draw.Over, nil)

	var buffer bytes.Buffer
	if format == "png" {
		err = png.Encode(&buffer, scaled)
	} else {
		err = jpeg.Encode(&buffer, scaled, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("media: encode %s: %w", format, err)
	}

	return buffer.Bytes(), nil
}
