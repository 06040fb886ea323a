// Package config loads and validates the application configuration.
//
// Values are merged from three sources in priority order: environment
// variables, command-line flags, and an optional JSON file. The merged
// result is validated before use; a configuration without a token signing
// key or a MongoDB URI is rejected so the process fails at startup instead
// of serving insecurely.
package config
