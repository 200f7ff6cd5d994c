// Package sqlite provides the SQLite implementation of
// store.GenerationLogStore, intended for local development where running
// PostgreSQL is unnecessary.
package sqlite
