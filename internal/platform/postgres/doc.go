// Package postgres provides the PostgreSQL implementation of
// store.GenerationLogStore.
//
// Connections are opened through the pgx stdlib driver ("pgx") by the server
// entry point; this package only needs a store.DBTX.
package postgres
