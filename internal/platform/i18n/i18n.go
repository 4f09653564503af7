// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package i18n renders the client-facing messages of the content API.

Error and confirmation messages always name the affected content type, so the
admin can tell which form failed. The site is bilingual; the catalog carries
English (the message keys themselves) and Spanish, selected by the LOCALE
setting. Unknown locales fall back to English.
*/
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Each is also the English rendering.
const (
	keyNotFound           = "%s not found"
	keyListFailed         = "Error fetching %s records"
	keyFetchFailed        = "Error fetching %s"
	keyCreateFailed       = "Error creating %s"
	keyUpdateFailed       = "Error updating %s"
	keyDeleteFailed       = "Error deleting %s"
	keyDeleted            = "%s deleted successfully"
	keyMissingField       = "Missing required field: %s"
	keyInvalidImage       = "Invalid image in field %s"
	keyAuthRequired       = "Authentication required"
	keyInvalidCredentials = "Invalid email or password"
	keyLoggedOut          = "Logged out"
)

var spanish = map[string]string{
	keyNotFound:           "%s no encontrado",
	keyListFailed:         "Error al obtener registros de %s",
	keyFetchFailed:        "Error al obtener %s",
	keyCreateFailed:       "Error al crear %s",
	keyUpdateFailed:       "Error al actualizar %s",
	keyDeleteFailed:       "Error al eliminar %s",
	keyDeleted:            "%s eliminado correctamente",
	keyMissingField:       "Falta el campo obligatorio: %s",
	keyInvalidImage:       "Imagen no válida en el campo %s",
	keyAuthRequired:       "Autenticación requerida",
	keyInvalidCredentials: "Correo o contraseña incorrectos",
	keyLoggedOut:          "Sesión cerrada",
}

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
	messages  = newCatalog()
)

func newCatalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, translated := range spanish {
		_ = builder.SetString(language.English, key, key)
		_ = builder.SetString(language.Spanish, key, translated)
	}
	return builder
}

// Messages renders catalog entries for one locale. It is safe for concurrent use.
type Messages struct {
	printer *message.Printer
	tag     language.Tag
}

// New returns the message set for a BCP 47 locale such as "es" or "en-GB".
func New(locale string) *Messages {
	matched, _ := language.MatchStrings(matcher, locale)
	base, _ := matched.Base()
	tag := language.Make(base.String())

	return &Messages{
		printer: message.NewPrinter(tag, message.Catalog(messages)),
		tag:     tag,
	}
}

// Language returns the resolved language tag.
func (m *Messages) Language() language.Tag { return m.tag }

func (m *Messages) NotFound(model string) string     { return m.printer.Sprintf(keyNotFound, model) }
func (m *Messages) ListFailed(model string) string   { return m.printer.Sprintf(keyListFailed, model) }
func (m *Messages) FetchFailed(model string) string  { return m.printer.Sprintf(keyFetchFailed, model) }
func (m *Messages) CreateFailed(model string) string { return m.printer.Sprintf(keyCreateFailed, model) }
func (m *Messages) UpdateFailed(model string) string { return m.printer.Sprintf(keyUpdateFailed, model) }
func (m *Messages) DeleteFailed(model string) string { return m.printer.Sprintf(keyDeleteFailed, model) }
func (m *Messages) Deleted(model string) string      { return m.printer.Sprintf(keyDeleted, model) }
func (m *Messages) MissingField(field string) string { return m.printer.Sprintf(keyMissingField, field) }
func (m *Messages) InvalidImage(field string) string { return m.printer.Sprintf(keyInvalidImage, field) }
func (m *Messages) AuthRequired() string             { return m.printer.Sprintf(keyAuthRequired) }
func (m *Messages) InvalidCredentials() string       { return m.printer.Sprintf(keyInvalidCredentials) }
func (m *Messages) LoggedOut() string                { return m.printer.Sprintf(keyLoggedOut) }
