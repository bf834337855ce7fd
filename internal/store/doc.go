// Package store persists job records keyed by their identity hash.
//
// The durable backend is a single-table SQLite database; writes use
// INSERT OR IGNORE so that re-running against the same rota snapshot is
// idempotent. An in-memory backend serves dry runs and tests.
package store
