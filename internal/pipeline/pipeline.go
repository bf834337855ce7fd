package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/logger"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/retry"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/rota"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/store"
)

// Deduper checks candidates against the store and persists the ones not
// seen before.
type Deduper struct {
	store store.Store
	retry retry.Config
	now   func() time.Time
}

// New creates a Deduper over the given store with the given retry policy.
func New(s store.Store, cfg retry.Config) *Deduper {
	return &Deduper{store: s, retry: cfg, now: time.Now}
}

// Process walks candidates in input order and returns only the newly
// persisted records. Candidates whose date context never resolved are
// dropped. Processing is strictly sequential: an in-run seen set guards
// against two candidates in the same batch normalizing to one identity, so
// the second is skipped even if the store lacks read-after-write
// consistency. Store calls go through the retry policy; an error here means
// retries were exhausted, and the records persisted so far are returned
// alongside it.
func (d *Deduper) Process(ctx context.Context, candidates []job.Candidate) ([]*job.Record, error) {
	newRecords := make([]*job.Record, 0)
	seen := make(map[string]struct{})

	for _, c := range candidates {
		if c.Date == rota.Unknown {
			logger.Debug("dropping candidate with unresolved date", logger.Fields{
				"event":  c.EventName,
				"holder": c.RoleHolder,
			})
			continue
		}

		jobID := job.IdentityOf(c.Date, c.EventName, c.RoleHolder)
		if _, dup := seen[jobID]; dup {
			continue
		}
		seen[jobID] = struct{}{}

		var exists bool
		err := retry.Do(ctx, d.retry, func() error {
			var checkErr error
			exists, checkErr = d.store.Exists(ctx, jobID)
			return checkErr
		}, d.logRetry("store.exists", jobID))
		if err != nil {
			return newRecords, fmt.Errorf("checking job %s: %w", jobID, err)
		}
		if exists {
			continue
		}

		rec := job.NewRecord(c, d.now())
		err = retry.Do(ctx, d.retry, func() error {
			return d.store.Upsert(ctx, rec)
		}, d.logRetry("store.upsert", jobID))
		if err != nil {
			return newRecords, fmt.Errorf("persisting job %s: %w", jobID, err)
		}

		newRecords = append(newRecords, rec)
		logger.Add("records.new", 1)
	}

	return newRecords, nil
}

func (d *Deduper) logRetry(op, jobID string) retry.Notify {
	return func(attempt int, err error, delay time.Duration) {
		logger.Warn("retrying store operation", logger.Fields{
			"op":      op,
			"job_id":  jobID,
			"attempt": attempt,
			"delay":   delay.String(),
		})
	}
}
