package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
)

const schema = `
CREATE TABLE IF NOT EXISTS jobs (
	job_id        TEXT PRIMARY KEY,
	date          TEXT NOT NULL,
	date_resolved TEXT NOT NULL,
	event_name    TEXT NOT NULL,
	role_holder   TEXT NOT NULL,
	is_vacancy    INTEGER NOT NULL,
	saved_at      TEXT NOT NULL
);`

// SQLite is the on-disk Store backend.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the jobs database at path. A "~/"
// prefix expands to the user's home directory.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// sqlite wants a single writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Exists reports whether a job ID is already recorded.
func (s *SQLite) Exists(ctx context.Context, jobID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM jobs WHERE job_id = ? LIMIT 1;`, jobID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking job %s: %w", jobID, err)
	}
	return true, nil
}

// Upsert writes the record keyed by its JobID. INSERT OR IGNORE makes the
// write conditional, so an existing record is left untouched and two
// overlapping runs cannot record the same job twice.
func (s *SQLite) Upsert(ctx context.Context, rec *job.Record) error {
	_, err := s.db.ExecContext(ctx, `
INSERT OR IGNORE INTO jobs (job_id, date, date_resolved, event_name, role_holder, is_vacancy, saved_at)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
		rec.JobID, rec.Date, rec.DateResolved, rec.EventName, rec.RoleHolder, boolToInt(rec.IsVacancy),
		rec.SavedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting job %s: %w", rec.JobID, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
