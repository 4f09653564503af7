// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/media"
	"github.com/makebyjordan/mbj/internal/platform/dberr"
	"github.com/makebyjordan/mbj/internal/platform/i18n"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// memoryRepository is an in-memory content.Repository.
type memoryRepository struct {
	mu        sync.Mutex
	rows      map[string]content.Record
	clock     time.Time
	insertErr error
	writes    int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		rows:  map[string]content.Record{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (repo *memoryRepository) tick() string {
	repo.clock = repo.clock.Add(time.Second)
	return repo.clock.Format(time.RFC3339)
}

func (repo *memoryRepository) List(_ context.Context) ([]content.Record, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	records := make([]content.Record, 0, len(repo.rows))
	for _, row := range repo.rows {
		records = append(records, row.Clone())
	}
	slices.SortFunc(records, func(a, b content.Record) int {
		return -compareStrings(a.String("createdAt"), b.String("createdAt"))
	})
	return records, nil
}

func (repo *memoryRepository) Get(_ context.Context, id string) (content.Record, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	row, found := repo.rows[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	return row.Clone(), nil
}

func (repo *memoryRepository) Insert(_ context.Context, record content.Record) (content.Record, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.insertErr != nil {
		return nil, repo.insertErr
	}

	row := record.Clone()
	now := repo.tick()
	if _, found := row["createdAt"]; !found {
		row["createdAt"] = now
	}
	row["updatedAt"] = now

	repo.rows[row.ID()] = row
	repo.writes++
	return row.Clone(), nil
}

func (repo *memoryRepository) Update(_ context.Context, id string, patch content.Record) (content.Record, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	row, found := repo.rows[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	for key, value := range patch {
		row[key] = value
	}
	row["updatedAt"] = repo.tick()
	repo.writes++
	return row.Clone(), nil
}

func (repo *memoryRepository) Upsert(_ context.Context, id string, record content.Record) (content.Record, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	row, found := repo.rows[id]
	if !found {
		row = content.Record{"id": id, "createdAt": repo.tick()}
	}
	for key, value := range record {
		row[key] = value
	}
	row["id"] = id
	repo.rows[id] = row
	repo.writes++
	return row.Clone(), nil
}

func (repo *memoryRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, found := repo.rows[id]; !found {
		return dberr.ErrNotFound
	}
	delete(repo.rows, id)
	repo.writes++
	return nil
}

func (repo *memoryRepository) count() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.rows)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// fakeImages records image operations in order.
type fakeImages struct {
	calls      []string
	persistErr error
	prepareErr error
	sequence   int
}

func (images *fakeImages) Prepare(payload media.Payload) (media.Payload, error) {
	if images.prepareErr != nil {
		return media.Payload{}, images.prepareErr
	}
	return payload, nil
}

func (images *fakeImages) Persist(_ context.Context, payload media.Payload, folder, filename string) (string, error) {
	if images.persistErr != nil {
		return "", images.persistErr
	}
	images.sequence++
	if filename == "" {
		filename = fmt.Sprintf("%d%s", images.sequence, media.Extension(payload.MimeType))
	}
	url := "/uploads/" + folder + "/" + filename
	images.calls = append(images.calls, "persist "+url)
	return url, nil
}

func (images *fakeImages) Remove(_ context.Context, url string) {
	images.calls = append(images.calls, "remove "+url)
}

func (images *fakeImages) removed() []string {
	var urls []string
	for _, call := range images.calls {
		if url, found := strings.CutPrefix(call, "remove "); found {
			urls = append(urls, url)
		}
	}
	return urls
}

// recordingPublisher keeps published topics.
type recordingPublisher struct {
	topics []string
	err    error
}

func (publisher *recordingPublisher) Publish(_ context.Context, topic string, _ any) error {
	publisher.topics = append(publisher.topics, topic)
	return publisher.err
}

func (publisher *recordingPublisher) Close() error { return nil }

type fixture struct {
	repo      *memoryRepository
	images    *fakeImages
	publisher *recordingPublisher
	deps      content.Dependencies
}

func newFixture() *fixture {
	f := &fixture{
		repo:      newMemoryRepository(),
		images:    &fakeImages{},
		publisher: &recordingPublisher{},
	}
	f.deps = content.Dependencies{
		Images:    f.images,
		Publisher: f.publisher,
		Messages:  i18n.New("en"),
		Logger:    discard,
	}
	return f
}

var errBoom = errors.New("connection reset")
