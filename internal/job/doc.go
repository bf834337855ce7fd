// Package job defines the core record types for extracted rota jobs.
//
// A Candidate is one event/role occurrence pulled out of the rota table.
// A Record is the persisted form, keyed by a deterministic content hash of
// its semantic fields so that repeated runs recognize records they have
// already stored.
package job
