// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package media_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/media"
	"github.com/makebyjordan/mbj/internal/platform/config"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := media.NewLocalStore(dir)

	// 1. Put creates intermediate directories
	require.NoError(t, store.Put(ctx, "projects/a.png", []byte("png"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "projects", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	// 2. Delete removes the file
	require.NoError(t, store.Delete(ctx, "projects/a.png"))
	_, err = os.Stat(filepath.Join(dir, "projects", "a.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// 3. A second delete reports the missing file
	assert.ErrorIs(t, store.Delete(ctx, "projects/a.png"), os.ErrNotExist)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store := media.NewLocalStore(t.TempDir())

	for _, key := range []string{"../a.png", "projects/../../a.png", "/etc/passwd", `projects\a.png`, "", "projects//a.png"} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, store.Put(context.Background(), key, nil, ""), media.ErrInvalidKey)
			assert.ErrorIs(t, store.Delete(context.Background(), key), media.ErrInvalidKey)
		})
	}
}

type fakeS3 struct {
	puts    map[string][]byte
	types   map[string]string
	deletes []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{puts: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*params.Bucket+":"+*params.Key] = body
	f.types[*params.Key] = *params.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, *params.Bucket+":"+*params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()
	client := newFakeS3()
	store := media.NewS3StoreWithClient(client, "site", "/uploads/")

	require.NoError(t, store.Put(ctx, "tools/t.webp", []byte("webp"), "image/webp"))
	require.NoError(t, store.Delete(ctx, "tools/t.webp"))

	assert.Equal(t, []byte("webp"), client.puts["site:uploads/tools/t.webp"])
	assert.Equal(t, "image/webp", client.types["uploads/tools/t.webp"])
	assert.Equal(t, []string{"site:uploads/tools/t.webp"}, client.deletes)

	assert.ErrorIs(t, store.Put(ctx, "../x", nil, ""), media.ErrInvalidKey)
}

func TestNewFromConfig_Local(t *testing.T) {
	dir := t.TempDir()

	setup, err := media.NewFromConfig(context.Background(), config.StorageConfig{
		PublicDir:   dir,
		UploadsRoot: "/uploads/",
	}, discard)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "uploads"), setup.LocalDir)

	url, err := setup.Ingestor.Ingest(context.Background(), dataURL("image/png", pngBytes(t, 4, 4)), "notes")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/notes/"))
	assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(url, "/"))))
}
