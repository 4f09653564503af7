// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/makebyjordan/mbj/internal/platform/constants"
)

// RedisSessionRepository implements SessionRepository using Redis. Expiry is
// delegated to the key TTL.
type RedisSessionRepository struct {
	client redis.Cmdable
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client redis.Cmdable) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// SessionKey returns the Redis key of a session.
func SessionKey(id string) string {
	return constants.RedisPrefixSession + id
}

func (repository *RedisSessionRepository) Create(context context.Context, session *Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := repository.client.Set(context, SessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

func (repository *RedisSessionRepository) Find(context context.Context, id string) (*Session, error) {
	payload, err := repository.client.Get(context, SessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	return session, nil
}

func (repository *RedisSessionRepository) Delete(context context.Context, id string) error {
	if err := repository.client.Del(context, SessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
