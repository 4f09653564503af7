// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/makebyjordan/mbj/internal/platform/constants"
	"github.com/makebyjordan/mbj/internal/platform/ctxutil"
	"github.com/makebyjordan/mbj/internal/platform/sec"
)

// NewCookieStore returns the signed cookie store holding the session id.
func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(constants.SessionTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	return store
}

// Resolver implements middleware.SessionResolver.
//
// A bearer token is an explicit claim, so an invalid one is an error. A stale
// or tampered cookie only makes the request anonymous, which keeps the public
// site readable for a browser holding an old cookie.
type Resolver struct {
	service *Service
	cookies sessions.Store
}

func NewResolver(service *Service, cookies sessions.Store) *Resolver {
	return &Resolver{service: service, cookies: cookies}
}

func (resolver *Resolver) Resolve(request *http.Request) (*sec.AuthClaims, error) {
	if header := request.Header.Get(constants.HeaderAuthorization); header != "" {
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return nil, errors.New("auth: malformed authorization header")
		}
		return resolver.service.Verify(request.Context(), strings.TrimSpace(token))
	}

	cookie, err := resolver.cookies.Get(request, constants.SessionCookieName)
	if err != nil {
		return nil, nil
	}

	sessionID, _ := cookie.Values[constants.SessionCookieKey].(string)
	if sessionID == "" {
		return nil, nil
	}

	session, err := resolver.service.Session(request.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "session_lookup_failed",
				slog.String("error", err.Error()),
			)
		}
		return nil, nil
	}

	return &sec.AuthClaims{SessionID: session.ID, Email: session.Email, Role: session.Role}, nil
}
