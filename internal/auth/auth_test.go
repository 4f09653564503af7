// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makebyjordan/mbj/internal/auth"
	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/constants"
	"github.com/makebyjordan/mbj/internal/platform/ctxutil"
	"github.com/makebyjordan/mbj/internal/platform/i18n"
	"github.com/makebyjordan/mbj/internal/platform/middleware"
	"github.com/makebyjordan/mbj/internal/platform/sec"
)

const (
	adminEmail    = "jordan@example.com"
	adminPassword = "correct horse battery staple"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type memorySessions struct {
	mu   sync.Mutex
	rows map[string]auth.Session
}

func (m *memorySessions) Create(_ context.Context, session *auth.Session, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows == nil {
		m.rows = map[string]auth.Session{}
	}
	m.rows[session.ID] = *session
	return nil
}

func (m *memorySessions) Find(_ context.Context, id string) (*auth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, found := m.rows[id]
	if !found {
		return nil, auth.ErrSessionNotFound
	}
	return &session, nil
}

func (m *memorySessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

func newService(t *testing.T, tokens auth.TokenProvider) (*auth.Service, *memorySessions) {
	t.Helper()

	hash, err := sec.HashPassword(adminPassword)
	require.NoError(t, err)

	store := &memorySessions{}
	admin := auth.Admin{Email: adminEmail, PasswordHash: hash}
	return auth.NewService(admin, store, tokens, i18n.New("en"), discard), store
}

func newTokens(t *testing.T) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKeys(key, &key.PublicKey, constants.AuthIssuer)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	service, store := newService(t, nil)

	result, err := service.Login(ctx, "  JORDAN@example.com ", adminPassword)
	require.NoError(t, err)

	assert.Len(t, result.Session.ID, constants.SessionIDLength)
	assert.Equal(t, constants.AdminRole, result.Session.Role)
	assert.Empty(t, result.AccessToken)
	assert.Contains(t, store.rows, result.Session.ID)
}

func TestService_LoginRejects(t *testing.T) {
	ctx := context.Background()
	service, store := newService(t, nil)

	tests := []struct {
		name     string
		email    string
		password string
		status   int
	}{
		{"wrong_password", adminEmail, "nope", http.StatusUnauthorized},
		{"wrong_email", "other@example.com", adminPassword, http.StatusUnauthorized},
		{"missing_password", adminEmail, "", http.StatusBadRequest},
		{"malformed_email", "jordan", adminPassword, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(ctx, tt.email, tt.password)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, tt.status, appError.HTTPStatus)
		})
	}
	assert.Empty(t, store.rows)
}

func TestService_LogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	service, _ := newService(t, newTokens(t))

	result, err := service.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, result.AccessToken)

	claims, err := service.Verify(ctx, result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.Session.ID, claims.SessionID)

	require.NoError(t, service.Logout(ctx, result.Session.ID))

	_, err = service.Verify(ctx, result.AccessToken)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestService_VerifyWithoutKeys(t *testing.T) {
	service, _ := newService(t, nil)

	_, err := service.Verify(context.Background(), "token")
	assert.Error(t, err)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "auth:session:abc", auth.SessionKey("abc"))
}

// newServer wires the auth routes the way the API does.
func newServer(t *testing.T, service *auth.Service) http.Handler {
	t.Helper()

	cookies := auth.NewCookieStore("0123456789abcdef0123456789abcdef", false)
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(auth.NewResolver(service, cookies)))

	router.Mount("/api/auth", auth.NewHandler(service, cookies).Routes(middleware.RequireAuth("Authentication required")))
	router.Get("/whoami", func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		if claims == nil {
			_, _ = io.WriteString(writer, "anonymous")
			return
		}
		_, _ = io.WriteString(writer, claims.Email)
	})
	return router
}

func login(t *testing.T, server http.Handler) (*http.Cookie, map[string]any) {
	t.Helper()

	body := `{"email":"` + adminEmail + `","password":"` + adminPassword + `"}`
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	return cookies[0], payload
}

func whoami(server http.Handler, decorate func(*http.Request)) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	decorate(request)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	return recorder
}

func TestHTTP_CookieSession(t *testing.T) {
	service, _ := newService(t, nil)
	server := newServer(t, service)

	cookie, payload := login(t, server)
	assert.Equal(t, adminEmail, payload["email"])
	assert.NotContains(t, payload, "accessToken")

	recorder := whoami(server, func(request *http.Request) { request.AddCookie(cookie) })
	assert.Equal(t, adminEmail, recorder.Body.String())

	// Session endpoint reports the session.
	request := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	request.AddCookie(cookie)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Logout revokes the session and expires the cookie.
	request = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	request.AddCookie(cookie)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, recorder.Body.String())

	recorder = whoami(server, func(request *http.Request) { request.AddCookie(cookie) })
	assert.Equal(t, "anonymous", recorder.Body.String())
}

func TestHTTP_BearerToken(t *testing.T) {
	service, _ := newService(t, newTokens(t))
	server := newServer(t, service)

	_, payload := login(t, server)
	token, _ := payload["accessToken"].(string)
	require.NotEmpty(t, token)

	recorder := whoami(server, func(request *http.Request) {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	})
	assert.Equal(t, adminEmail, recorder.Body.String())

	recorder = whoami(server, func(request *http.Request) {
		request.Header.Set(constants.HeaderAuthorization, "Bearer not-a-token")
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHTTP_TamperedCookieIsAnonymous(t *testing.T) {
	service, _ := newService(t, nil)
	server := newServer(t, service)

	recorder := whoami(server, func(request *http.Request) {
		request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "forged"})
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "anonymous", recorder.Body.String())
}

func TestHTTP_LoginWrongPassword(t *testing.T) {
	service, _ := newService(t, nil)
	server := newServer(t, service)

	recorder := httptest.NewRecorder()
	body := `{"email":"` + adminEmail + `","password":"wrong"}`
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, recorder.Result().Cookies())
}

func TestHTTP_LogoutRequiresSession(t *testing.T) {
	service, _ := newService(t, nil)
	server := newServer(t, service)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
