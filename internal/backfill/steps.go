// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package backfill

import (
	"time"

	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/legacy"
)

// Transform maps one legacy document to the row of its content type. now is
// the fallback creation time of the whole run.
type Transform func(document legacy.Document, now time.Time) (content.Record, error)

// Step migrates one legacy collection into one content type.
type Step struct {
	Collection string
	Model      string
	Transform  Transform

	// Singleton steps migrate only the first document, to the route's fixed id.
	Singleton bool
}

// DefaultSteps returns the migration plan in the order it runs.
func DefaultSteps() []Step {
	return []Step{
		{Collection: "projects", Model: "Project", Transform: transformProject},
		{Collection: "notes", Model: "Note", Transform: transformNote},
		{Collection: "protocols", Model: "Protocol", Transform: transformProtocol},
		{Collection: "tools", Model: "Tool", Transform: transformTool},
		{Collection: "links", Model: "Link", Transform: transformLink},
		{Collection: "services", Model: "Service", Transform: transformService},
		{Collection: "heroContent", Model: "HeroContent", Transform: transformHero, Singleton: true},
		{Collection: "aboutContent", Model: "AboutContent", Transform: transformAbout, Singleton: true},
	}
}

// # Transforms

// base carries the id and the timestamps. A missing updatedAt reuses
// createdAt so reruns write the same value.
func base(document legacy.Document, fields *legacy.Fields, now time.Time) content.Record {
	createdAt := fields.Time("createdAt", now)
	return content.Record{
		"id":        document.ID,
		"createdAt": createdAt,
		"updatedAt": fields.Time("updatedAt", createdAt),
	}
}

func finish(record content.Record, fields *legacy.Fields) (content.Record, error) {
	if err := fields.Err(); err != nil {
		return nil, err
	}
	return record, nil
}

func transformProject(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["description"] = fields.String("description")
	record["content"] = fields.String("content")
	record["imageUrl"] = fields.String("imageUrl")
	record["tags"] = fields.Strings("tags")
	record["demoUrl"] = fields.String("demoUrl")
	record["repoUrl"] = fields.String("repoUrl")
	record["featured"] = fields.Bool("featured")

	return finish(record, fields)
}

func transformNote(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["description"] = fields.String("description")
	record["content"] = fields.String("content")
	record["tags"] = fields.Strings("tags")

	return finish(record, fields)
}

func transformProtocol(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["description"] = fields.String("description")
	record["content"] = fields.String("content")
	record["category"] = fields.String("category")
	record["steps"] = fields.List("steps")
	record["imageUrl"] = fields.String("imageUrl")

	return finish(record, fields)
}

func transformTool(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["name"] = fields.String("name")
	record["description"] = fields.String("description")
	record["url"] = fields.String("url")
	record["category"] = fields.String("category")
	record["imageUrl"] = fields.String("imageUrl")
	record["tags"] = fields.Strings("tags")

	return finish(record, fields)
}

func transformLink(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["url"] = fields.String("url")
	record["description"] = fields.String("description")
	record["category"] = fields.String("category")

	return finish(record, fields)
}

func transformService(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["description"] = fields.String("description")
	record["price"] = fields.Number("price")
	record["features"] = fields.Strings("features")
	record["imageUrl"] = fields.String("imageUrl")
	record["sortOrder"] = fields.Int("sortOrder")

	return finish(record, fields)
}

func transformHero(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["subtitle"] = fields.String("subtitle")
	record["description"] = fields.String("description")
	record["ctaText"] = fields.String("ctaText")
	record["ctaLink"] = fields.String("ctaLink")
	record["imageUrl"] = fields.String("imageUrl")

	return finish(record, fields)
}

func transformAbout(document legacy.Document, now time.Time) (content.Record, error) {
	fields := document.Fields()
	record := base(document, fields, now)

	record["title"] = fields.String("title")
	record["content"] = fields.String("content")
	record["skills"] = fields.Strings("skills")
	record["imageUrl"] = fields.String("imageUrl")

	return finish(record, fields)
}
