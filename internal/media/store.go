// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrInvalidKey is returned for object keys that could escape the uploads root.
var ErrInvalidKey = errors.New("media: invalid object key")

// Store persists upload bytes under keys of the form "<folder>/<filename>".
//
// Delete reports a missing object with an error matching [os.ErrNotExist]
// when the backend can tell.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// # Local disk

// LocalStore writes uploads below a directory served as static files.
type LocalStore struct {
	dir string
}

// NewLocalStore returns a store rooted at dir (typically <public>/<uploadsRoot>).
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

// Dir returns the root directory.
func (store *LocalStore) Dir() string { return store.dir }

func (store *LocalStore) path(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return filepath.Join(store.dir, filepath.FromSlash(key)), nil
}

// Put creates intermediate directories as needed and writes the file.
func (store *LocalStore) Put(_ context.Context, key string, data []byte, _ string) error {
	target, err := store.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("media: create upload dir: %w", err)
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("media: write upload: %w", err)
	}
	return nil
}

// Delete removes the file. A missing file yields an error matching os.ErrNotExist.
func (store *LocalStore) Delete(_ context.Context, key string) error {
	target, err := store.path(key)
	if err != nil {
		return err
	}
	return os.Remove(target)
}

// # Object storage

// S3API is the subset of the S3 client used by [S3Store].
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store writes uploads to an S3-compatible bucket (AWS, Cloudflare R2, MinIO).
type S3Store struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Store builds an S3 client from the default AWS credential chain. If
// endpoint is non-empty, path-style addressing is enabled for R2 and MinIO.
func NewS3Store(ctx context.Context, bucket, region, endpoint, prefix string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("media: load AWS config: %w", err)
	}

	var s3opts []func(*s3.Options)
	if endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}

	return NewS3StoreWithClient(s3.NewFromConfig(cfg, s3opts...), bucket, prefix), nil
}

// NewS3StoreWithClient wraps an existing client. Objects are stored under prefix.
func NewS3StoreWithClient(client S3API, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (store *S3Store) objectKey(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	if store.prefix == "" {
		return key, nil
	}
	return path.Join(store.prefix, key), nil
}

// Put uploads data as a public object.
func (store *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	objectKey, err := store.objectKey(key)
	if err != nil {
		return err
	}

	_, err = store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(store.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("media: s3 put object: %w", err)
	}
	return nil
}

// Delete removes the object. S3 deletes are idempotent, so a missing object
// is not reported.
func (store *S3Store) Delete(ctx context.Context, key string) error {
	objectKey, err := store.objectKey(key)
	if err != nil {
		return err
	}

	_, err = store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("media: s3 delete object: %w", err)
	}
	return nil
}
