// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/makebyjordan/mbj/internal/platform/request"
	"github.com/makebyjordan/mbj/internal/platform/respond"
)

// Handler exposes resources over HTTP. Reads are public; writes go through
// the guard, which rejects callers without an admin session.
type Handler struct {
	guard func(http.Handler) http.Handler
}

func NewHandler(guard func(http.Handler) http.Handler) *Handler {
	return &Handler{guard: guard}
}

// Mount registers resource under /{apiPath} on router.
func (handler *Handler) Mount(router chi.Router, resource Resource) {
	path := "/" + resource.Route().APIPath

	switch res := resource.(type) {
	case *CollectionResource:
		router.Route(path, func(r chi.Router) {
			r.Get("/", handler.list(res))
			r.Get("/{id}", handler.get(res))

			r.Group(func(admin chi.Router) {
				admin.Use(handler.guard)
				admin.Post("/", handler.create(res))
				admin.Put("/{id}", handler.update(res))
				admin.Delete("/{id}", handler.delete(res))
			})
		})

	case *SingletonResource:
		router.Route(path, func(r chi.Router) {
			r.Get("/", handler.getSingleton(res))
			r.With(handler.guard).Put("/", handler.putSingleton(res))
		})

	default:
		panic(fmt.Sprintf("content: unsupported resource %T", resource))
	}
}

func (handler *Handler) list(res *CollectionResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		records, err := res.List(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, records)
	}
}

func (handler *Handler) get(res *CollectionResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		record, err := res.Get(request.Context(), requestutil.Param(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) create(res *CollectionResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var body Record
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}

		record, err := res.Create(request.Context(), body)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, record)
	}
}

func (handler *Handler) update(res *CollectionResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var body Record
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}

		record, err := res.Update(request.Context(), requestutil.Param(request, "id"), body)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) delete(res *CollectionResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := res.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Message(writer, res.deps.Messages.Deleted(res.route.Name))
	}
}

func (handler *Handler) getSingleton(res *SingletonResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		record, err := res.Get(request.Context())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}

func (handler *Handler) putSingleton(res *SingletonResource) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var body Record
		if err := requestutil.DecodeJSON(request, &body); err != nil {
			respond.Error(writer, request, err)
			return
		}

		record, err := res.Put(request.Context(), body)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, record)
	}
}
