// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-reel-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token-signing settings. The token lifetime itself is a
	// fixed policy constant in the service layer, not a configuration knob.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for the MongoDB persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds SMTP settings for outgoing password-reset mail.
	Mail Mail `envPrefix:"MAIL_"`

	// CORS holds the browser origin allow-list applied to the whole router.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds token-signing configuration.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. Required: the process refuses to start
	// without it rather than silently operate insecurely.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-reel-keeper"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// Mongo holds the MongoDB connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`
}

// Mongo holds connection settings for the MongoDB backend.
type Mongo struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017"). Required.
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the name of the database holding all collections.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE" envDefault:"reelkeeper"`

	// ConnectTimeout bounds the initial connect + ping at startup.
	// Env: STORAGE_MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Mail holds SMTP delivery settings for outgoing mail. When Host is empty
// the application falls back to a no-op sender that only logs, which keeps
// local development working without an SMTP server.
type Mail struct {
	// Host is the SMTP server hostname.
	// Env: MAIL_HOST
	Host string `env:"HOST"`

	// Port is the SMTP server port.
	// Env: MAIL_PORT
	Port int `env:"PORT" envDefault:"587"`

	// Username authenticates against the SMTP server.
	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`

	// Password authenticates against the SMTP server.
	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`

	// From is the sender address on outgoing mail.
	// Env: MAIL_FROM
	From string `env:"FROM"`

	// ResetBaseURL is the public URL prefix the reset token is appended to
	// when composing the password-reset link.
	// Env: MAIL_RESET_BASE_URL
	ResetBaseURL string `env:"RESET_BASE_URL"`
}

// CORS holds the browser origin allow-list.
type CORS struct {
	// AllowedOrigins lists the origins permitted to call the API from a
	// browser. Comma-separated in the environment.
	// Env: CORS_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (an earlier source wins for fields it sets; later sources fill the gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
