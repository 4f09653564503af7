// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package media

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/makebyjordan/mbj/internal/platform/config"
)

// Setup is the upload stack built from configuration.
type Setup struct {
	Ingestor *Ingestor

	// LocalDir is the directory to serve uploads from, or empty for S3.
	LocalDir string
}

// NewFromConfig selects the S3 backend when a bucket is configured and the
// local disk otherwise. Both the API and the migration CLI use it, so
// migrated images land where the API serves them from.
func NewFromConfig(ctx context.Context, storage config.StorageConfig, logger *slog.Logger) (*Setup, error) {
	root := strings.Trim(storage.UploadsRoot, "/")
	options := Options{UploadsRoot: root, MaxWidth: storage.UploadMaxWidth}

	if storage.UsesS3() {
		store, err := NewS3Store(ctx, storage.S3Bucket, storage.S3Region, storage.S3Endpoint, root)
		if err != nil {
			return nil, err
		}
		options.PublicBaseURL = storage.S3PublicURL

		logger.InfoContext(ctx, "upload_storage_selected",
			slog.String("backend", "s3"),
			slog.String("bucket", storage.S3Bucket),
		)
		return &Setup{Ingestor: NewIngestor(store, options, logger)}, nil
	}

	dir := filepath.Join(storage.PublicDir, filepath.FromSlash(root))
	logger.InfoContext(ctx, "upload_storage_selected",
		slog.String("backend", "local"),
		slog.String("dir", dir),
	)
	return &Setup{Ingestor: NewIngestor(NewLocalStore(dir), options, logger), LocalDir: dir}, nil
}
