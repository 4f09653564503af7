// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package middleware

import (
	"net/http"

	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/ctxutil"
	"github.com/makebyjordan/mbj/internal/platform/respond"
	"github.com/makebyjordan/mbj/internal/platform/sec"
)

// SessionResolver turns request credentials into admin claims.
//
// Resolve returns (nil, nil) for anonymous requests. It returns an error only
// when the caller presented credentials explicitly and they are invalid.
type SessionResolver interface {
	Resolve(request *http.Request) (*sec.AuthClaims, error)
}

// Authenticate resolves the admin session, if any, and stores its claims in
// the request context. Public routes keep working for anonymous callers.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := resolver.Resolve(request)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired session"))
				return
			}

			if claims == nil {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated with a 401 carrying
// the given message.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if ctxutil.GetAuthUser(request.Context()) == nil {
				respond.Error(writer, request, apperr.Unauthorized(message))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
