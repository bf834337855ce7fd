package notifier

import (
	"fmt"
	"sort"
	"strings"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
)

// FormatDigest formats newly recorded jobs as a single digest message.
// Vacant shifts sort before assigned ones; the sort is stable so records
// with the same vacancy status keep their input order.
func FormatDigest(records []*job.Record) string {
	if len(records) == 0 {
		return "No new rota jobs found."
	}

	ordered := make([]*job.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].IsVacancy && !ordered[j].IsVacancy
	})

	var b strings.Builder
	fmt.Fprintf(&b, "New rota jobs (%d):\n", len(ordered))
	for _, rec := range ordered {
		fmt.Fprintf(&b, "%s\n", FormatLine(rec))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatLine formats one record as a labeled digest line.
func FormatLine(rec *job.Record) string {
	line := fmt.Sprintf("• %s | %s | %s", rec.Date, rec.EventName, rec.RoleHolder)
	if rec.IsVacancy {
		line += " [VACANT]"
	}
	return line
}
