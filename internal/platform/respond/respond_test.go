// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/respond"
)

func TestOK_RawBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]any{"id": "abc", "title": "T"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"id":"abc","title":"T"}`, recorder.Body.String())
}

func TestCreated_RawBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Created(recorder, []string{"a"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `["a"]`, recorder.Body.String())
}

func TestMessage(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.Message(recorder, "Note deleted successfully")

	assert.JSONEq(t, `{"message":"Note deleted successfully"}`, recorder.Body.String())
}

func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/notes/x", nil)

	respond.Error(recorder, request, apperr.NotFound("Note not found"))

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Note not found", body.Error)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestError_PlainErrorIsSanitized(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/notes", nil)

	respond.Error(recorder, request, errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.3")
}
