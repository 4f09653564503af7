// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: Token issuer, session cookie and session lifetime.
  - Uploads: Body size limit and default uploads root.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "mbj-content-api"
	AppVersion = "0.3.0"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Inline images arrive in the JSON body, so this is generous.
	DefaultReadTimeout = 20 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "makebyjordan.com"

	// AdminRole is the only role the content API knows about.
	AdminRole = "admin"

	// SessionCookieName is the cookie carrying the signed admin session id.
	SessionCookieName = "mbj_admin"

	// SessionCookieKey is the value key inside the cookie session.
	SessionCookieKey = "sid"

	// SessionTTL bounds both the Redis session record and the cookie.
	SessionTTL = 12 * time.Hour

	// SessionIDLength is the nanoid length of a session identifier.
	SessionIDLength = 32
)

// # Uploads

const (
	// DefaultUploadsRoot is the public path segment every StoredImage lives under.
	DefaultUploadsRoot = "uploads"

	// MaxRequestBodyBytes caps JSON bodies, which may embed base64 images.
	MaxRequestBodyBytes = 15 << 20

	// UploadSuffixLength is the nanoid length appended to generated file names.
	UploadSuffixLength = 8
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixSession = "auth:session:"
)

// # Event Topics

const (
	// TopicPrefix namespaces every content change subject: content.<apiPath>.<action>.
	TopicPrefix = "content"
)
