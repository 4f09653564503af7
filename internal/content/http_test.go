// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package content_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/content"
	"github.com/makebyjordan/mbj/internal/platform/middleware"
	"github.com/makebyjordan/mbj/internal/platform/sec"
)

// headerResolver treats any request carrying X-Admin as authenticated.
type headerResolver struct{}

func (headerResolver) Resolve(request *http.Request) (*sec.AuthClaims, error) {
	if request.Header.Get("X-Admin") == "" {
		return nil, nil
	}
	return &sec.AuthClaims{SessionID: "test"}, nil
}

func newServer(t *testing.T, f *fixture) http.Handler {
	t.Helper()

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(headerResolver{}))

	handler := content.NewHandler(middleware.RequireAuth("Authentication required"))
	router.Route("/api", func(r chi.Router) {
		handler.Mount(r, content.NewResource(noteRoute, f.repo, f.deps))
		handler.Mount(r, content.NewResource(heroRoute, f.repo, f.deps))
	})
	return router
}

func do(t *testing.T, server http.Handler, method, path, body string, admin bool) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if admin {
		request.Header.Set("X-Admin", "1")
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	var decoded map[string]any
	if strings.HasPrefix(strings.TrimSpace(recorder.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func TestHTTP_WritesRequireAuth(t *testing.T) {
	f := newFixture()
	server := newServer(t, f)

	requests := []struct{ method, path string }{
		{http.MethodPost, "/api/notes"},
		{http.MethodPut, "/api/notes/abc"},
		{http.MethodDelete, "/api/notes/abc"},
		{http.MethodPut, "/api/hero-content"},
	}
	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			recorder, body := do(t, server, req.method, req.path, `{"title":"x","description":"y"}`, false)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, "Authentication required", body["error"])
		})
	}
	assert.Zero(t, f.repo.count())
}

func TestHTTP_CreateMissingField(t *testing.T) {
	f := newFixture()
	server := newServer(t, f)

	recorder, body := do(t, server, http.MethodPost, "/api/notes", `{"title":"x"}`, true)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, body["error"], "description")
	assert.Zero(t, f.repo.count())
}

func TestHTTP_RoundTrip(t *testing.T) {
	f := newFixture()
	server := newServer(t, f)

	recorder, created := do(t, server, http.MethodPost, "/api/notes", `{"title":"x","description":"y","tags":["go"]}`, true)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, fetched := do(t, server, http.MethodGet, "/api/notes/"+created["id"].(string), "", false)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, created, fetched)

	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/notes", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &list))
	assert.Equal(t, []map[string]any{created}, list)
}

func TestHTTP_EmptyListIsArray(t *testing.T) {
	server := newServer(t, newFixture())

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/notes", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestHTTP_UpdateMissing(t *testing.T) {
	f := newFixture()
	server := newServer(t, f)

	recorder, body := do(t, server, http.MethodPut, "/api/notes/nope", `{"title":"x"}`, true)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Note not found", body["error"])
	assert.Zero(t, f.repo.count())
}

func TestHTTP_Delete(t *testing.T) {
	f := newFixture()
	server := newServer(t, f)

	_, created := do(t, server, http.MethodPost, "/api/notes", `{"title":"x","description":"y"}`, true)

	recorder, body := do(t, server, http.MethodDelete, "/api/notes/"+created["id"].(string), "", true)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, map[string]any{"message": "Note deleted successfully"}, body)
	assert.Zero(t, f.repo.count())
}

func TestHTTP_InvalidJSON(t *testing.T) {
	server := newServer(t, newFixture())

	recorder, body := do(t, server, http.MethodPost, "/api/notes", `{"title":`, true)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Invalid JSON payload", body["error"])
}

func TestHTTP_Singleton(t *testing.T) {
	f := newFixture()
	server := newServer(t, f)

	recorder, body := do(t, server, http.MethodGet, "/api/hero-content", "", false)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, body)
	assert.JSONEq(t, `{}`, recorder.Body.String())

	recorder, body = do(t, server, http.MethodPut, "/api/hero-content", `{"title":"Hi"}`, true)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "herocontent_singleton", body["id"])

	recorder, body = do(t, server, http.MethodGet, "/api/hero-content", "", false)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Hi", body["title"])
}
