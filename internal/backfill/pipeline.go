// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package backfill copies the legacy document store into the content tables.

The run is sequential and idempotent. Every document is upserted by the id it
had in the legacy store, so an operator can rerun the whole pipeline after a
partial failure and reach the same end state. The exception is a document
with no createdAt: it takes the time of the run, so each rerun rewrites its
createdAt and updatedAt. A document that fails is logged
with its id and skipped; a collection that cannot be read is logged and the
next one runs.
*/
package backfill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/legacy"
	"github.com/makebyjordan/mbj/internal/media"
	"github.com/makebyjordan/mbj/internal/registry"
)

// LegacyImagePrefix starts the filename of every migrated image.
const LegacyImagePrefix = "legacy-"

// Images persists decoded images. [media.Ingestor] implements it.
type Images interface {
	Persist(ctx context.Context, payload media.Payload, folder, filename string) (string, error)
}

// Dependencies of a [Pipeline].
type Dependencies struct {
	Source       legacy.Source
	Routes       *registry.Registry
	Repositories map[string]content.Repository
	Images       Images
	Logger       *slog.Logger
}

// Pipeline runs a list of steps against a legacy source.
type Pipeline struct {
	deps  Dependencies
	steps []Step
	now   func() time.Time
}

// NewPipeline returns a pipeline over steps, or [DefaultSteps] when none are given.
func NewPipeline(deps Dependencies, steps ...Step) *Pipeline {
	if len(steps) == 0 {
		steps = DefaultSteps()
	}
	return &Pipeline{deps: deps, steps: steps, now: time.Now}
}

// # Report

// CollectionReport is the outcome of one step.
type CollectionReport struct {
	Collection string
	Model      string
	Read       int
	Migrated   int
	Failed     int
	FailedIDs  []string

	// Err is set when the collection could not be processed at all.
	Err error
}

// Report is the outcome of a run.
type Report struct {
	Collections []CollectionReport
}

// Totals sums every collection.
func (r Report) Totals() (read, migrated, failed int) {
	for _, collection := range r.Collections {
		read += collection.Read
		migrated += collection.Migrated
		failed += collection.Failed
	}
	return read, migrated, failed
}

// Incomplete reports whether any document or collection failed.
func (r Report) Incomplete() bool {
	for _, collection := range r.Collections {
		if collection.Err != nil || collection.Failed > 0 {
			return true
		}
	}
	return false
}

// # Run

// Run executes every step in order. It never stops early: failures end up
// in the report and the log.
func (p *Pipeline) Run(ctx context.Context) Report {
	logger := p.deps.Logger
	now := p.now().UTC()

	report := Report{Collections: make([]CollectionReport, 0, len(p.steps))}
	for _, step := range p.steps {
		result := p.runStep(ctx, step, now)
		if result.Err != nil {
			logger.ErrorContext(ctx, "backfill_collection_failed",
				slog.String("collection", step.Collection),
				slog.String("error", result.Err.Error()),
			)
		} else {
			logger.InfoContext(ctx, "backfill_collection_done",
				slog.String("collection", step.Collection),
				slog.Int("read", result.Read),
				slog.Int("migrated", result.Migrated),
				slog.Int("failed", result.Failed),
			)
		}
		report.Collections = append(report.Collections, result)
	}

	read, migrated, failed := report.Totals()
	logger.InfoContext(ctx, "backfill_finished",
		slog.Int("read", read),
		slog.Int("migrated", migrated),
		slog.Int("failed", failed),
	)
	return report
}

func (p *Pipeline) runStep(ctx context.Context, step Step, now time.Time) CollectionReport {
	result := CollectionReport{Collection: step.Collection, Model: step.Model}

	route, found := p.deps.Routes.Lookup(step.Model)
	if !found {
		result.Err = fmt.Errorf("model %s is not registered", step.Model)
		return result
	}
	if route.Singleton != step.Singleton {
		result.Err = fmt.Errorf("model %s: singleton mismatch with the registry", step.Model)
		return result
	}

	repo, found := p.deps.Repositories[step.Model]
	if !found {
		result.Err = fmt.Errorf("model %s has no repository", step.Model)
		return result
	}

	documents, err := p.deps.Source.Documents(ctx, step.Collection)
	if err != nil {
		result.Err = err
		return result
	}

	if step.Singleton && len(documents) > 1 {
		p.deps.Logger.WarnContext(ctx, "backfill_singleton_extra_documents",
			slog.String("collection", step.Collection),
			slog.Int("ignored", len(documents)-1),
		)
		documents = documents[:1]
	}

	for index, document := range documents {
		result.Read++

		if err := p.migrate(ctx, step, route, repo, document, now); err != nil {
			result.Failed++
			result.FailedIDs = append(result.FailedIDs, document.ID)
			p.deps.Logger.ErrorContext(ctx, "backfill_document_failed",
				slog.String("collection", step.Collection),
				slog.String("id", document.ID),
				slog.Int("index", index),
				slog.String("error", err.Error()),
			)
			continue
		}

		result.Migrated++
		p.deps.Logger.DebugContext(ctx, "backfill_document_migrated",
			slog.String("collection", step.Collection),
			slog.String("id", document.ID),
		)
	}

	return result
}

func (p *Pipeline) migrate(ctx context.Context, step Step, route registry.RouteConfig, repo content.Repository, document legacy.Document, now time.Time) error {
	if document.ID == "" && !step.Singleton {
		return errors.New("document has no id")
	}

	record, err := step.Transform(document, now)
	if err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	id := document.ID
	if step.Singleton {
		id = route.SingletonID()
	}
	record["id"] = id

	if route.HasImage {
		if err := p.ingestImage(ctx, route, id, record); err != nil {
			return err
		}
	}

	if _, err := repo.Upsert(ctx, id, record); err != nil {
		return fmt.Errorf("upsert: %w", err)
	}
	return nil
}

// ingestImage stores an inline image found in the legacy document under a
// filename derived from the id, so a rerun overwrites the same file.
func (p *Pipeline) ingestImage(ctx context.Context, route registry.RouteConfig, id string, record content.Record) error {
	value, found := record[route.ImageField]
	if !found || !media.IsInlineImage(value) {
		return nil
	}

	payload, err := media.Decode(value.(string))
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}

	filename := LegacyImagePrefix + id + media.Extension(payload.MimeType)
	url, err := p.deps.Images.Persist(ctx, payload, route.ImageFolder, filename)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}

	record[route.ImageField] = url
	return nil
}
