package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source. Fatal at startup.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingMongoURI indicates that no MongoDB connection URI was
	// provided by any configuration source. Fatal at startup.
	ErrMissingMongoURI = errors.New("mongodb uri is required")
)
