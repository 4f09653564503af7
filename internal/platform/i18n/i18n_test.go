// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/makebyjordan/mbj/internal/platform/i18n"
)

func TestMessages_English(t *testing.T) {
	messages := i18n.New("en")

	assert.Equal(t, language.English, messages.Language())
	assert.Equal(t, "Note not found", messages.NotFound("Note"))
	assert.Equal(t, "Missing required field: description", messages.MissingField("description"))
	assert.Equal(t, "Project deleted successfully", messages.Deleted("Project"))
	assert.Equal(t, "Error fetching Tool records", messages.ListFailed("Tool"))
}

func TestMessages_Spanish(t *testing.T) {
	messages := i18n.New("es-MX")

	assert.Equal(t, language.Spanish, messages.Language())
	assert.Equal(t, "Note no encontrado", messages.NotFound("Note"))
	assert.Equal(t, "Falta el campo obligatorio: description", messages.MissingField("description"))
	assert.Equal(t, "Autenticación requerida", messages.AuthRequired())
}

func TestMessages_UnknownLocaleFallsBack(t *testing.T) {
	messages := i18n.New("xx")

	assert.Equal(t, "Link not found", messages.NotFound("Link"))
}
