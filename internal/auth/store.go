// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package auth

import (
	"context"
	"time"
)

// SessionRepository stores admin sessions until they expire.
type SessionRepository interface {
	// Create persists session for ttl.
	Create(context context.Context, session *Session, ttl time.Duration) error

	// Find returns the live session, or [ErrSessionNotFound].
	Find(context context.Context, id string) (*Session, error)

	// Delete revokes the session. Deleting an unknown session is not an error.
	Delete(context context.Context, id string) error
}
