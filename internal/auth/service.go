// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package auth is the admin session provider of the content API.

There is exactly one admin identity, configured by email and bcrypt hash. A
successful login creates a server-side session in Redis; the browser receives
its id in a signed cookie, and API clients may also receive an RS256 access
token that carries the same id. Logging out deletes the session, which revokes
both at once.

Architecture:

  - Service: Login, Logout and session lookup.
  - Resolver: Turns request credentials into claims for middleware.Authenticate.
  - Handler: /api/auth/login, /api/auth/logout, /api/auth/session.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/makebyjordan/mbj/internal/platform/apperr"
	"github.com/makebyjordan/mbj/internal/platform/constants"
	"github.com/makebyjordan/mbj/internal/platform/i18n"
	"github.com/makebyjordan/mbj/internal/platform/sec"
	"github.com/makebyjordan/mbj/internal/platform/validate"
	"github.com/makebyjordan/mbj/pkg/idgen"
)

// # Contracts & Types

// TokenProvider issues and verifies bearer tokens. [sec.TokenService] implements it.
type TokenProvider interface {
	GenerateAccessToken(sessionID, email, role string, timeToLive time.Duration) (string, error)
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Session *Session

	// AccessToken is empty when no signing keys are configured.
	AccessToken string
}

// Service implements the admin authentication use cases.
type Service struct {
	admin    Admin
	sessions SessionRepository
	tokens   TokenProvider
	messages *i18n.Messages
	logger   *slog.Logger
	ttl      time.Duration
	now      func() time.Time
}

// NewService constructs a new [Service]. tokens may be nil, in which case
// only cookie sessions are issued.
func NewService(admin Admin, sessions SessionRepository, tokens TokenProvider, messages *i18n.Messages, logger *slog.Logger) *Service {
	return &Service{
		admin:    admin,
		sessions: sessions,
		tokens:   tokens,
		messages: messages,
		logger:   logger,
		ttl:      constants.SessionTTL,
		now:      time.Now,
	}
}

// # Login Flow

/*
Login checks the admin credentials and opens a session.

Returns:
  - *LoginResult: The new session and, when configured, its access token
  - error: VALIDATION_ERROR for a malformed request, UNAUTHORIZED for wrong
    credentials
*/
func (service *Service) Login(context context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)

	validator := &validate.Validator{}
	validator.Required("email", email).Email("email", email).Required("password", password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// The hash is always checked so a wrong email costs the same as a wrong password.
	passwordMatches := sec.CheckPasswordHash(password, service.admin.PasswordHash)
	emailMatches := strings.EqualFold(email, service.admin.Email)
	if !passwordMatches || !emailMatches {
		service.logger.WarnContext(context, "admin_login_rejected", slog.String("email", email))
		return nil, apperr.Unauthorized(service.messages.InvalidCredentials())
	}

	id, err := idgen.Generate(constants.SessionIDLength)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	currentTime := service.now().UTC()
	session := &Session{
		ID:        id,
		Email:     service.admin.Email,
		Role:      constants.AdminRole,
		CreatedAt: currentTime,
		ExpiresAt: currentTime.Add(service.ttl),
	}

	if err := service.sessions.Create(context, session, service.ttl); err != nil {
		return nil, apperr.Internal(err)
	}

	result := &LoginResult{Session: session}
	if service.tokens != nil {
		token, err := service.tokens.GenerateAccessToken(session.ID, session.Email, session.Role, service.ttl)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		result.AccessToken = token
	}

	service.logger.InfoContext(context, "admin_logged_in", slog.String("session_id", session.ID))
	return result, nil
}

// Logout revokes a session.
func (service *Service) Logout(context context.Context, sessionID string) error {
	if err := service.sessions.Delete(context, sessionID); err != nil {
		return apperr.Internal(err)
	}

	service.logger.InfoContext(context, "admin_logged_out", slog.String("session_id", sessionID))
	return nil
}

// Session returns the live session with id, or [ErrSessionNotFound].
func (service *Service) Session(context context.Context, id string) (*Session, error) {
	session, err := service.sessions.Find(context, id)
	if err != nil {
		return nil, err
	}

	if !session.ExpiresAt.IsZero() && service.now().After(session.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Verify checks a bearer token and the session it points to.
func (service *Service) Verify(context context.Context, token string) (*sec.AuthClaims, error) {
	if service.tokens == nil {
		return nil, errors.New("auth: bearer tokens are not enabled")
	}

	claims, err := service.tokens.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	if _, err := service.Session(context, claims.SessionID); err != nil {
		return nil, fmt.Errorf("auth: token session: %w", err)
	}
	return claims, nil
}
