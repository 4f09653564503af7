// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ExportSource reads collections dumped as JSON arrays, one file per
// collection named <collection>.json. Objects carry their document id in an
// "id" string; one without it is returned with an empty [Document.ID] and left
// to the caller to reject.
type ExportSource struct {
	files fs.FS
}

// NewExportSource reads exports from dir.
func NewExportSource(dir string) (*ExportSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("legacy: export dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("legacy: export dir: %s is not a directory", dir)
	}
	return &ExportSource{files: os.DirFS(dir)}, nil
}

// NewExportSourceFS reads exports from an arbitrary file system.
func NewExportSourceFS(files fs.FS) *ExportSource {
	return &ExportSource{files: files}
}

func (s *ExportSource) Documents(_ context.Context, collection string) ([]Document, error) {
	name := collection + ".json"
	if !fs.ValidPath(name) || filepath.Base(name) != name {
		return nil, fmt.Errorf("legacy: invalid collection name %q", collection)
	}

	raw, err := fs.ReadFile(s.files, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	if err != nil {
		return nil, fmt.Errorf("legacy: read %s: %w", name, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var objects []map[string]any
	if err := decoder.Decode(&objects); err != nil {
		return nil, fmt.Errorf("legacy: decode %s: %w", name, err)
	}

	documents := make([]Document, 0, len(objects))
	for _, object := range objects {
		id, _ := object["id"].(string)
		delete(object, "id")
		documents = append(documents, Document{ID: id, Data: object})
	}

	return documents, nil
}

func (s *ExportSource) Close() error { return nil }
