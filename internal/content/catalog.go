// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/makebyjordan/mbj/internal/platform/database/schema"
	"github.com/makebyjordan/mbj/internal/registry"
)

// CheckTable verifies that table can back route: it needs id and createdAt
// columns, the image column and every required field.
func CheckTable(route registry.RouteConfig, table *schema.Table) error {
	var errs []error

	needed := []string{schema.ColumnID, schema.ColumnCreatedAt}
	if route.HasImage {
		needed = append(needed, route.ImageField)
	}
	needed = append(needed, route.RequiredFields...)

	for _, column := range needed {
		if !table.Has(column) {
			errs = append(errs, fmt.Errorf("table %s has no column %q", table.Name, column))
		}
	}

	return errors.Join(errs...)
}

// Resolve inspects the table behind every route and returns one repository
// per route name. Any route that cannot be backed is reported; none is skipped.
func Resolve(context context.Context, db *sql.DB, routes []registry.RouteConfig) (map[string]Repository, error) {
	repositories := make(map[string]Repository, len(routes))

	var errs []error
	for _, route := range routes {
		table, err := schema.Inspect(context, db, route.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("route %s: %w", route.Name, err))
			continue
		}

		if err := CheckTable(route, table); err != nil {
			errs = append(errs, fmt.Errorf("route %s: %w", route.Name, err))
			continue
		}

		repositories[route.Name] = NewPostgresRepository(db, table)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("content: resolve models: %w", err)
	}
	return repositories, nil
}
