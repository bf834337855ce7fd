package store

import (
	"context"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
)

// Store is the durable record store: an existence check and an upsert keyed
// by the record's identity hash. Both operations are fallible; callers wrap
// them in the retry policy.
type Store interface {
	// Exists reports whether a record with the given job ID is already
	// persisted.
	Exists(ctx context.Context, jobID string) (bool, error)

	// Upsert writes the record under its JobID. Writing an already-present
	// key is a no-op, so concurrent or repeated runs cannot double-insert.
	Upsert(ctx context.Context, rec *job.Record) error

	Close() error
}
