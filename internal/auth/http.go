// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/constants"
	requestutil "github.com/makebyjordan/mbj/internal/platform/request"
	"github.com/makebyjordan/mbj/internal/platform/respond"
)

// Handler implements the admin session endpoints.
type Handler struct {
	service *Service
	cookies sessions.Store
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service, cookies sessions.Store) *Handler {
	return &Handler{service: service, cookies: cookies}
}

// Routes returns the auth router. requireAuth guards logout and session.
//
// # Endpoints
//   - POST /login   : Opens a session and sets the cookie.
//   - POST /logout  : Revokes the current session.
//   - GET  /session : Describes the current session.
func (handler *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)

	router.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/logout", handler.logout)
		r.Get("/session", handler.session)
	})

	return router
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expiresAt"`
	AccessToken string    `json:"accessToken,omitempty"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cookie, _ := handler.cookies.New(request, constants.SessionCookieName)
	cookie.Values[constants.SessionCookieKey] = result.Session.ID
	if err := cookie.Save(request, writer); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, sessionResponse{
		Email:       result.Session.Email,
		Role:        result.Session.Role,
		ExpiresAt:   result.Session.ExpiresAt,
		AccessToken: result.AccessToken,
	})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)

	if err := handler.service.Logout(request.Context(), claims.SessionID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	cookie, _ := handler.cookies.New(request, constants.SessionCookieName)
	cookie.Options.MaxAge = -1
	if err := cookie.Save(request, writer); err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.Message(writer, handler.service.messages.LoggedOut())
}

func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)

	session, err := handler.service.Session(request.Context(), claims.SessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			respond.Error(writer, request, apperr.Unauthorized(handler.service.messages.AuthRequired()))
			return
		}
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	respond.OK(writer, sessionResponse{
		Email:     session.Email,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}
