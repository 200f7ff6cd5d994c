// Package config handles configuration loading, parsing, and validation
// from various sources (.env file, config.yaml, environment variables). It
// provides type-safe access to provider credentials, model names, storage and
// server settings while keeping configuration details separate from the
// generation logic.
package config
