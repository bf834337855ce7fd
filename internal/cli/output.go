package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/notifier"
)

// OutputFormat selects how the run result is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Result is the run outcome written to stdout.
type Result struct {
	CheckedAt time.Time        `json:"checked_at"`
	Role      string           `json:"role"`
	NewJobs   []*job.Record    `json:"new_jobs"`
	JobCount  int              `json:"job_count"`
	Counters  map[string]int64 `json:"counters,omitempty"`
}

// WriteOutput renders the result in the requested format.
func WriteOutput(w io.Writer, result *Result, format OutputFormat) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if result.JobCount == 0 {
		fmt.Fprintf(w, "No new %s jobs.\n", result.Role)
		return nil
	}

	fmt.Fprintf(w, "%d new %s job(s):\n", result.JobCount, result.Role)
	for _, rec := range result.NewJobs {
		fmt.Fprintln(w, notifier.FormatLine(rec))
	}
	return nil
}
