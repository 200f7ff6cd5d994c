// Package store defines the generation log and the interface its backends
// implement.
//
// The in-memory backend lives here; database backends live under
// internal/platform (postgres, sqlite). All backends share the error values
// in errors.go so callers can test for them with errors.Is regardless of the
// driver in use.
package store
