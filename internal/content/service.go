// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package content serves every registered content type through one generic
implementation parameterised by its [registry.RouteConfig].

# Variants

Each route is bound once, at startup, to one of two resources:

  - [CollectionResource]: list, create, get, update and delete by id.
  - [SingletonResource]: get and put of the single instance at the route's
    fixed identifier.

# Known limitations

List order is createdAt descending; rows with equal timestamps come back in an
unspecified order. Updates read the current record to find its image and then
write, without a transaction, so two concurrent writers of one record can
interleave. Concurrent singleton puts are last-write-wins.
*/
package content

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/makebyjordan/mbj/internal/media"
	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/database/schema"
	"github.com/makebyjordan/mbj/internal/platform/dberr"
	"github.com/makebyjordan/mbj/internal/platform/events"
	"github.com/makebyjordan/mbj/internal/platform/i18n"
	"github.com/makebyjordan/mbj/internal/platform/validate"
	"github.com/makebyjordan/mbj/internal/registry"
	"github.com/makebyjordan/mbj/pkg/uuidv7"
)

// Images persists and removes StoredImages. [media.Ingestor] implements it.
//
// Prepare rejects a payload that could not be stored, without side effects.
type Images interface {
	Prepare(payload media.Payload) (media.Payload, error)
	Persist(ctx context.Context, payload media.Payload, folder, filename string) (string, error)
	Remove(ctx context.Context, url string)
}

// Resource is the capability shared by both variants.
type Resource interface {
	Route() registry.RouteConfig
}

// Dependencies are shared by every resource.
type Dependencies struct {
	Images    Images
	Publisher events.Publisher
	Messages  *i18n.Messages
	Logger    *slog.Logger
}

// NewResource selects the variant for route. A nil Publisher or Logger is
// replaced by a no-op publisher and the default logger.
func NewResource(route registry.RouteConfig, repo Repository, deps Dependencies) Resource {
	if deps.Publisher == nil {
		deps.Publisher = &events.NoopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	base := resource{route: route, repo: repo, deps: deps}
	if route.Singleton {
		return &SingletonResource{resource: base}
	}
	return &CollectionResource{resource: base}
}

// resource holds what both variants share.
type resource struct {
	route registry.RouteConfig
	repo  Repository
	deps  Dependencies
}

func (res *resource) Route() registry.RouteConfig { return res.route }

// failure keeps client errors as they are and turns everything else into a
// 500 whose message names the content type.
func (res *resource) failure(err error, message string) error {
	if appError := apperr.As(err); appError != nil && appError.HTTPStatus < 500 {
		return appError
	}
	return apperr.InternalWithMessage(message, err)
}

// replaceImage decodes and prepares an inline image in record's image field,
// then removes the previous file and persists the new one. A payload that
// cannot be decoded or prepared leaves the previous file in place. It returns
// the new URL, or "" when the field holds no inline image.
func (res *resource) replaceImage(ctx context.Context, record Record, previous string, failMessage string) (string, error) {
	if !res.route.HasImage || !media.IsInlineImage(record[res.route.ImageField]) {
		return "", nil
	}

	payload, err := media.Decode(record.String(res.route.ImageField))
	if err != nil {
		return "", res.invalidImage(err)
	}

	payload, err = res.deps.Images.Prepare(payload)
	if err != nil {
		if errors.Is(err, media.ErrUnreadableImage) {
			return "", res.invalidImage(err)
		}
		return "", apperr.InternalWithMessage(failMessage, err)
	}

	if previous != "" {
		res.deps.Images.Remove(ctx, previous)
	}

	url, err := res.deps.Images.Persist(ctx, payload, res.route.ImageFolder, "")
	if err != nil {
		return "", apperr.InternalWithMessage(failMessage, err)
	}

	record[res.route.ImageField] = url
	return url, nil
}

func (res *resource) invalidImage(err error) error {
	return apperr.ValidationError(res.deps.Messages.InvalidImage(res.route.ImageField),
		apperr.FieldError{Field: res.route.ImageField, Message: err.Error()})
}

// discard removes an image persisted for a write that then failed.
func (res *resource) discard(ctx context.Context, url string) {
	if url != "" {
		res.deps.Images.Remove(ctx, url)
	}
}

func (res *resource) publish(ctx context.Context, id string, action events.Action) {
	event := events.ContentChanged{
		Model:      res.route.Name,
		APIPath:    res.route.APIPath,
		ID:         id,
		Action:     action,
		OccurredAt: time.Now().UTC(),
	}

	if err := res.deps.Publisher.Publish(ctx, events.Topic(res.route.APIPath, action), event); err != nil {
		res.deps.Logger.WarnContext(ctx, "content_event_publish_failed",
			slog.String("model", res.route.Name),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}
}

// # Collections

// CollectionResource serves a content type with arbitrarily many records.
type CollectionResource struct {
	resource
}

// List returns every record, newest first.
func (res *CollectionResource) List(context context.Context) ([]Record, error) {
	records, err := res.repo.List(context)
	if err != nil {
		return nil, res.failure(err, res.deps.Messages.ListFailed(res.route.Name))
	}
	return records, nil
}

// Get returns one record or a 404 naming the type.
func (res *CollectionResource) Get(context context.Context, id string) (Record, error) {
	record, err := res.repo.Get(context, id)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, apperr.NotFound(res.deps.Messages.NotFound(res.route.Name))
	}
	if err != nil {
		return nil, res.failure(err, res.deps.Messages.FetchFailed(res.route.Name))
	}
	return record, nil
}

/*
Create validates and inserts a record.

Required fields are checked in declared order and the first missing one is
reported alone. An inline image is persisted before the insert and removed
again if the insert fails. A missing id is assigned as a UUID v7.
*/
func (res *CollectionResource) Create(context context.Context, body Record) (Record, error) {
	for _, field := range res.route.RequiredFields {
		if !body.Present(field) {
			return nil, validate.RequiredError(field, res.deps.Messages.MissingField(field))
		}
	}

	record := body.Clone()
	if !record.Present(schema.ColumnID) {
		record[schema.ColumnID] = uuidv7.New()
	}

	failMessage := res.deps.Messages.CreateFailed(res.route.Name)

	persisted, err := res.replaceImage(context, record, "", failMessage)
	if err != nil {
		return nil, err
	}

	created, err := res.repo.Insert(context, record)
	if err != nil {
		res.discard(context, persisted)
		return nil, res.failure(err, failMessage)
	}

	res.deps.Logger.InfoContext(context, "record_created",
		slog.String("model", res.route.Name),
		slog.String("id", created.ID()),
	)
	res.publish(context, created.ID(), events.ActionCreated)

	return created, nil
}

/*
Update applies body as a partial update of an existing record.

The record must exist; nothing is written otherwise. When body carries an
inline image, the record's previous image is removed before the new one is
persisted. The id itself cannot be changed.
*/
func (res *CollectionResource) Update(context context.Context, id string, body Record) (Record, error) {
	existing, err := res.Get(context, id)
	if err != nil {
		return nil, err
	}

	patch := body.Clone()
	delete(patch, schema.ColumnID)

	failMessage := res.deps.Messages.UpdateFailed(res.route.Name)

	persisted, err := res.replaceImage(context, patch, existing.String(res.route.ImageField), failMessage)
	if err != nil {
		return nil, err
	}

	updated, err := res.repo.Update(context, id, patch)
	if err != nil {
		res.discard(context, persisted)
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound(res.deps.Messages.NotFound(res.route.Name))
		}
		return nil, res.failure(err, failMessage)
	}

	res.deps.Logger.InfoContext(context, "record_updated",
		slog.String("model", res.route.Name),
		slog.String("id", id),
	)
	res.publish(context, id, events.ActionUpdated)

	return updated, nil
}

// Delete removes a record and, first, its image when it has one.
func (res *CollectionResource) Delete(context context.Context, id string) error {
	existing, err := res.Get(context, id)
	if err != nil {
		return err
	}

	if res.route.HasImage && existing.Present(res.route.ImageField) {
		res.deps.Images.Remove(context, existing.String(res.route.ImageField))
	}

	if err := res.repo.Delete(context, id); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return apperr.NotFound(res.deps.Messages.NotFound(res.route.Name))
		}
		return res.failure(err, res.deps.Messages.DeleteFailed(res.route.Name))
	}

	res.deps.Logger.InfoContext(context, "record_deleted",
		slog.String("model", res.route.Name),
		slog.String("id", id),
	)
	res.publish(context, id, events.ActionDeleted)

	return nil
}

// # Singletons

// SingletonResource serves a content type with exactly one instance, created
// lazily by the first put.
type SingletonResource struct {
	resource
}

// Get returns the instance, or an empty record when it was never written.
func (res *SingletonResource) Get(context context.Context) (Record, error) {
	record, err := res.repo.Get(context, res.route.SingletonID())
	if errors.Is(err, dberr.ErrNotFound) {
		return Record{}, nil
	}
	if err != nil {
		return nil, res.failure(err, res.deps.Messages.FetchFailed(res.route.Name))
	}
	return record, nil
}

// Put creates or updates the instance with body.
func (res *SingletonResource) Put(context context.Context, body Record) (Record, error) {
	id := res.route.SingletonID()
	failMessage := res.deps.Messages.UpdateFailed(res.route.Name)

	payload := body.Clone()
	delete(payload, schema.ColumnID)

	var previous string
	if res.route.HasImage && media.IsInlineImage(payload[res.route.ImageField]) {
		current, err := res.repo.Get(context, id)
		if err != nil && !errors.Is(err, dberr.ErrNotFound) {
			return nil, res.failure(err, failMessage)
		}
		previous = current.String(res.route.ImageField)
	}

	persisted, err := res.replaceImage(context, payload, previous, failMessage)
	if err != nil {
		return nil, err
	}

	result, err := res.repo.Upsert(context, id, payload)
	if err != nil {
		res.discard(context, persisted)
		return nil, res.failure(err, failMessage)
	}

	res.deps.Logger.InfoContext(context, "singleton_saved",
		slog.String("model", res.route.Name),
		slog.String("id", id),
	)
	res.publish(context, id, events.ActionUpdated)

	return result, nil
}
