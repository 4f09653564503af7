// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package registry holds the Route Schema Registry: the ordered, validated list of
content types the API serves.

# Source

The default registry is declared in registry.cue, embedded into the binary and
compiled with CUE at load time. The CUE schema and [RouteConfig.Validate] encode
the same rules, so an invalid entry is rejected at startup, never at request time.

# Concurrency

A [Registry] is immutable after [New] returns and safe for concurrent reads.
*/
package registry

import (
	_ "embed"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/makebyjordan/mbj/pkg/slice"
)

//go:embed registry.cue
var source []byte

// Registry is the read-only set of content routes, in declaration order.
type Registry struct {
	routes []RouteConfig
	byName map[string]int
	byPath map[string]int
}

// Load compiles the embedded registry.cue and returns the validated registry.
func Load() (*Registry, error) {
	return Parse(source)
}

// Parse compiles a CUE document exposing a top-level `routes` list of #Route.
func Parse(document []byte) (*Registry, error) {
	value := cuecontext.New().CompileBytes(document, cue.Filename("registry.cue"))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("registry: compile: %w", err)
	}

	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("registry: validate: %w", err)
	}

	routesValue := value.LookupPath(cue.ParsePath("routes"))
	if !routesValue.Exists() {
		return nil, errors.New("registry: document has no routes list")
	}

	var routes []RouteConfig
	if err := routesValue.Decode(&routes); err != nil {
		return nil, fmt.Errorf("registry: decode routes: %w", err)
	}

	return New(routes...)
}

// New validates routes and their uniqueness and returns an immutable registry.
func New(routes ...RouteConfig) (*Registry, error) {
	registry := &Registry{
		routes: make([]RouteConfig, 0, len(routes)),
		byName: make(map[string]int, len(routes)),
		byPath: make(map[string]int, len(routes)),
	}

	for _, route := range routes {
		if err := route.Validate(); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		if _, taken := registry.byName[route.Name]; taken {
			return nil, fmt.Errorf("registry: duplicate name %q", route.Name)
		}
		if _, taken := registry.byPath[route.APIPath]; taken {
			return nil, fmt.Errorf("registry: duplicate apiPath %q", route.APIPath)
		}

		// Copy so later edits to the caller's slice cannot leak in.
		route.RequiredFields = append([]string{}, route.RequiredFields...)

		registry.byName[route.Name] = len(registry.routes)
		registry.byPath[route.APIPath] = len(registry.routes)
		registry.routes = append(registry.routes, route)
	}

	return registry, nil
}

// All returns a copy of every route in declaration order.
func (registry *Registry) All() []RouteConfig {
	return append([]RouteConfig(nil), registry.routes...)
}

// Lookup finds a route by model name.
func (registry *Registry) Lookup(name string) (RouteConfig, bool) {
	index, found := registry.byName[name]
	if !found {
		return RouteConfig{}, false
	}
	return registry.routes[index], true
}

// ByPath finds a route by its API path segment.
func (registry *Registry) ByPath(apiPath string) (RouteConfig, bool) {
	index, found := registry.byPath[apiPath]
	if !found {
		return RouteConfig{}, false
	}
	return registry.routes[index], true
}

// Len returns the number of routes.
func (registry *Registry) Len() int { return len(registry.routes) }

// Singletons returns the singleton routes in declaration order.
func (registry *Registry) Singletons() []RouteConfig {
	return slice.Filter(registry.routes, func(route RouteConfig) bool { return route.Singleton })
}
