// Copyright (c) 2026 MakeByJordan. All rights reserved.
// Author: makebyjordan

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The API server reads [Config]; the migration CLI reads [MigrateConfig]. Both
share [StorageConfig] so migrated images land where the API serves them from.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// StorageConfig selects and configures the upload backend.
type StorageConfig struct {

	// Local backend: files are written below PublicDir/UploadsRoot.
	PublicDir   string `env:"PUBLIC_DIR"   envDefault:"./public"`
	UploadsRoot string `env:"UPLOADS_ROOT" envDefault:"uploads"`

	// UploadMaxWidth downscales wider JPEG/PNG uploads. Zero disables resizing.
	UploadMaxWidth int `env:"UPLOAD_MAX_WIDTH" envDefault:"1600"`

	// Object Storage (Cloudflare R2 / S3-compatible). Setting S3Bucket selects it.
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"     envDefault:"auto"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`
}

// UsesS3 reports whether uploads go to object storage instead of the local disk.
func (s StorageConfig) UsesS3() bool {
	return s.S3Bucket != ""
}

// Config holds all runtime configuration for the content API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	Locale      string `env:"LOCALE"       envDefault:"en"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// AutoMigrate applies embedded schema migrations before serving traffic.
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"true"`

	// Key-Value Store (Redis) for admin sessions
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Admin identity and session signing
	SessionSecret     string `env:"SESSION_SECRET,required,notEmpty"`
	AdminEmail        string `env:"ADMIN_EMAIL,required,notEmpty"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required,notEmpty"`
	CookieSecure      bool   `env:"COOKIE_SECURE" envDefault:"true"`

	// Optional RS256 keys; when both are set, login also returns a bearer token.
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH"`

	// Optional NATS server for content change events
	NATSURL string `env:"NATS_URL"`

	// Cross-Origin Resource Sharing
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	Storage StorageConfig
}

// MigrateConfig holds the configuration of the legacy data migration job.
type MigrateConfig struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	// Target relational store
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LegacySource is "firestore" or "export".
	LegacySource string `env:"LEGACY_SOURCE" envDefault:"firestore"`

	// Firestore source
	FirebaseProjectID     string `env:"FIREBASE_PROJECT_ID"`
	GoogleCredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	// Export source: a directory of <collection>.json files
	LegacyExportDir string `env:"LEGACY_EXPORT_DIR"`

	Storage StorageConfig
}

// SchemaConfig holds what `contentctl schema` needs.
type SchemaConfig struct {
	Debug       bool   `env:"DEBUG" envDefault:"false"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
}

// Legacy source kinds.
const (
	LegacySourceFirestore = "firestore"
	LegacySourceExport    = "export"
)

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if (cfg.JWTPrivKeyPath == "") != (cfg.JWTPubKeyPath == "") {
		return nil, fmt.Errorf("config: JWT_PRIVATE_KEY_PATH and JWT_PUBLIC_KEY_PATH must be set together")
	}

	return cfg, nil
}

// LoadMigrate parses environment variables into a [MigrateConfig] struct.
func LoadMigrate() (*MigrateConfig, error) {
	cfg := &MigrateConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	switch cfg.LegacySource {
	case LegacySourceFirestore:
		if cfg.FirebaseProjectID == "" {
			return nil, fmt.Errorf("config: FIREBASE_PROJECT_ID is required for the firestore source")
		}
	case LegacySourceExport:
		if cfg.LegacyExportDir == "" {
			return nil, fmt.Errorf("config: LEGACY_EXPORT_DIR is required for the export source")
		}
	default:
		return nil, fmt.Errorf("config: unknown LEGACY_SOURCE %q", cfg.LegacySource)
	}

	return cfg, nil
}

// LoadSchema parses environment variables into a [SchemaConfig] struct.
func LoadSchema() (*SchemaConfig, error) {
	cfg := &SchemaConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsAllowedOrigin reports whether a browser origin may call the API with credentials.
func (c *Config) IsAllowedOrigin(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}

// HasTokenKeys reports whether bearer tokens can be issued.
func (c *Config) HasTokenKeys() bool {
	return c.JWTPrivKeyPath != "" && c.JWTPubKeyPath != ""
}
