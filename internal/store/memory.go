package store

import (
	"context"
	"sync"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
)

// Memory is an in-process Store used by dry runs and tests.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*job.Record
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]*job.Record)}
}

// Exists reports whether a job ID has been stored.
func (m *Memory) Exists(_ context.Context, jobID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.records[jobID]
	return ok, nil
}

// Upsert stores the record, keeping the first write for a given key.
func (m *Memory) Upsert(_ context.Context, rec *job.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.JobID]; !ok {
		m.records[rec.JobID] = rec
	}
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}

// Len returns the number of stored records.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
