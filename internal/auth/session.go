// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package auth

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned for unknown, expired or revoked sessions.
var ErrSessionNotFound = errors.New("auth: session not found")

// Session is a server-side admin login. Its ID is what the cookie and the
// bearer token carry.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Admin is the single identity allowed to edit content.
type Admin struct {
	Email        string
	PasswordHash string
}
