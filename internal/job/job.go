package job

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/dates"
)

// Candidate is an extracted, not-yet-deduplicated event/role occurrence.
// The Date field carries the raw heading text from the rota table, not a
// normalized date.
type Candidate struct {
	Date       string `json:"date"`
	EventName  string `json:"event_name"`
	RoleHolder string `json:"role_holder"`
}

// Record is a persisted job occurrence. JobID is the identity hash of the
// candidate's semantic fields and doubles as the storage key; it is always
// computed from the raw Date text so identity never shifts if the
// normalization rules change. DateResolved carries the canonical form of
// Date for display and querying. Records are created once per distinct
// JobID and never mutated afterwards.
type Record struct {
	JobID        string    `json:"job_id"`
	Date         string    `json:"date"`
	DateResolved string    `json:"date_resolved"`
	EventName    string    `json:"event_name"`
	RoleHolder   string    `json:"role_holder"`
	IsVacancy    bool      `json:"is_vacancy"`
	SavedAt      time.Time `json:"saved_at"`
}

// IdentityOf computes a deterministic content hash over the given fields.
// Each field is lower-cased and whitespace-collapsed before hashing, and the
// fields are joined with a pipe so that field boundaries cannot collide
// ("a"+"bc" never hashes like "ab"+"c"). The result is a fixed-length
// lowercase hex string.
func IdentityOf(fields ...string) string {
	normalized := make([]string, len(fields))
	for i, f := range fields {
		normalized[i] = strings.Join(strings.Fields(strings.ToLower(f)), " ")
	}
	sum := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(sum[:])
}

// NewRecord builds a Record from a candidate, assigning its identity hash,
// canonical date, and save timestamp. Relative date terms in the heading
// text resolve against savedAt.
func NewRecord(c Candidate, savedAt time.Time) *Record {
	return &Record{
		JobID:        IdentityOf(c.Date, c.EventName, c.RoleHolder),
		Date:         c.Date,
		DateResolved: dates.Normalize(c.Date, savedAt),
		EventName:    c.EventName,
		RoleHolder:   c.RoleHolder,
		IsVacancy:    IsVacant(c.RoleHolder),
		SavedAt:      savedAt.UTC(),
	}
}

// IsVacant reports whether a role-holder name marks the shift as unfilled.
func IsVacant(roleHolder string) bool {
	return strings.Contains(strings.ToLower(roleHolder), "unassigned")
}
