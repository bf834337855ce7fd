package rota

import (
	"regexp"
	"strings"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/dates"
	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
)

// Unknown is the sentinel emitted for unresolved date or event context.
const Unknown = "unknown"

// UnassignedHolder is the fallback role-holder label when the holder column
// is absent from a matching row.
const UnassignedHolder = "Unassigned"

// RawRow is one table row as ordered, trimmed cell text.
type RawRow []string

var timeRangeRe = regexp.MustCompile(`\d{1,2}:\d{2}\s*-\s*\d{1,2}:\d{2}`)

// Label is a context value that is either resolved to heading text or still
// unknown. An explicit type avoids colliding the sentinel with genuine cell
// text that happens to read "unknown".
type Label struct {
	text     string
	resolved bool
}

// Resolved wraps heading text in a resolved label.
func Resolved(text string) Label {
	return Label{text: text, resolved: true}
}

// Unresolved returns the sentinel label.
func Unresolved() Label {
	return Label{}
}

// IsResolved reports whether the label carries real heading text.
func (l Label) IsResolved() bool {
	return l.resolved
}

// String returns the heading text, or the Unknown sentinel when unresolved.
func (l Label) String() string {
	if !l.resolved {
		return Unknown
	}
	return l.text
}

// Context is the date/event state carried across rows during one walk. It
// lives only for the duration of the walk and is never persisted.
type Context struct {
	Date  Label
	Event Label
}

// NewContext returns the initial walk context with both labels unresolved.
func NewContext() Context {
	return Context{Date: Unresolved(), Event: Unresolved()}
}

// Walk folds over the row sequence and emits a candidate for every row that
// matches the target role under resolved context. The final context is
// returned alongside the candidates so callers and tests can inspect where
// the walk ended; there is no implicit flush at end of input.
func Walk(rows []RawRow, targetRole string) ([]job.Candidate, Context) {
	ctx := NewContext()
	candidates := make([]job.Candidate, 0)

	for _, row := range rows {
		var c *job.Candidate
		ctx, c = walkRow(ctx, row, targetRole)
		if c != nil {
			candidates = append(candidates, *c)
		}
	}

	return candidates, ctx
}

// walkRow classifies a single row and advances the context. Classification
// order matters: a row is tested as a date heading, then a time range, then
// a role match, and the first rule that fires wins. Rows that fit none of
// the rules, or that arrive before their context is resolved, are dropped
// rather than producing malformed records.
func walkRow(ctx Context, row RawRow, targetRole string) (Context, *job.Candidate) {
	if len(row) == 0 {
		return ctx, nil
	}

	first := row[0]

	switch {
	case isDateHeading(first):
		// A new date heading opens a fresh section: the previous event no
		// longer applies.
		ctx.Date = Resolved(first)
		ctx.Event = Unresolved()
		return ctx, nil

	case isTimeRange(first):
		ctx.Event = eventLabelFrom(row)
		if cellAt(row, 2) == targetRole && ctx.Event.IsResolved() {
			return ctx, &job.Candidate{
				Date:       ctx.Date.String(),
				EventName:  ctx.Event.String(),
				RoleHolder: holderFrom(row, 4),
			}
		}
		return ctx, nil

	case first == targetRole:
		if ctx.Date.IsResolved() && ctx.Event.IsResolved() {
			return ctx, &job.Candidate{
				Date:       ctx.Date.String(),
				EventName:  ctx.Event.String(),
				RoleHolder: holderFrom(row, 1),
			}
		}
		return ctx, nil
	}

	return ctx, nil
}

// isDateHeading matches rows whose first cell starts with a weekday name.
// A time range also containing digits and colons never starts with a
// weekday, but the check is explicit so a pathological cell satisfying both
// patterns classifies as a date heading.
func isDateHeading(cell string) bool {
	return dates.StartsWithWeekday(cell) && !timeRangeRe.MatchString(cell)
}

func isTimeRange(cell string) bool {
	return timeRangeRe.MatchString(cell)
}

// eventLabelFrom derives the event name from the second cell with any time
// range substring stripped, falling back to the raw cell when stripping
// leaves nothing. A missing or empty second cell leaves the event
// unresolved.
func eventLabelFrom(row RawRow) Label {
	raw := cellAt(row, 1)
	stripped := strings.TrimSpace(timeRangeRe.ReplaceAllString(raw, ""))
	if stripped == "" {
		stripped = strings.TrimSpace(raw)
	}
	if stripped == "" {
		return Unresolved()
	}
	return Resolved(stripped)
}

// holderFrom reads the designated role-holder column, substituting the
// Unassigned label when the column is missing or blank.
func holderFrom(row RawRow, idx int) string {
	if idx >= len(row) || strings.TrimSpace(row[idx]) == "" {
		return UnassignedHolder
	}
	return row[idx]
}

func cellAt(row RawRow, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
