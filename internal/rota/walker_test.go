package rota

import (
	"reflect"
	"testing"

	"github.com/venkateshgovinda22-lab/mersey-job-scraper/internal/job"
)

func TestWalkBasicHierarchy(t *testing.T) {
	rows := []RawRow{
		{"Mon 1 Jan"},
		{"09:00 - 10:00", "Ward Round", "Doctor", "", "Dr. A"},
		{"Doctor", "Dr. B"},
	}

	candidates, ctx := Walk(rows, "Doctor")

	want := []job.Candidate{
		{Date: "Mon 1 Jan", EventName: "Ward Round", RoleHolder: "Dr. A"},
		{Date: "Mon 1 Jan", EventName: "Ward Round", RoleHolder: "Dr. B"},
	}

	if !reflect.DeepEqual(candidates, want) {
		t.Errorf("Walk produced %+v, expected %+v", candidates, want)
	}

	if !ctx.Date.IsResolved() || ctx.Date.String() != "Mon 1 Jan" {
		t.Errorf("final context date = %q, expected Mon 1 Jan", ctx.Date.String())
	}
	if !ctx.Event.IsResolved() || ctx.Event.String() != "Ward Round" {
		t.Errorf("final context event = %q, expected Ward Round", ctx.Event.String())
	}
}

func TestWalkUnresolvedContextDrop(t *testing.T) {
	// A role row before any date heading has no usable context.
	rows := []RawRow{
		{"Doctor", "Dr. B"},
	}

	candidates, ctx := Walk(rows, "Doctor")

	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %+v", candidates)
	}
	if ctx.Date.IsResolved() {
		t.Error("context date should remain unresolved")
	}
}

func TestWalkDateHeadingResetsEvent(t *testing.T) {
	// A new date heading closes the previous event section, so a role row
	// immediately after it has no event context and is dropped.
	rows := []RawRow{
		{"Mon 1 Jan"},
		{"09:00 - 10:00", "Ward Round", "Doctor", "", "Dr. A"},
		{"Tue 2 Jan"},
		{"Doctor", "Dr. B"},
	}

	candidates, _ := Walk(rows, "Doctor")

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Date != "Mon 1 Jan" || candidates[0].RoleHolder != "Dr. A" {
		t.Errorf("unexpected candidate %+v", candidates[0])
	}
}

func TestWalkTimeRangeWithoutDateEmitsUnknown(t *testing.T) {
	// A time-range row matching the role before any date heading still
	// emits, carrying the unknown sentinel; the dedupe stage drops it.
	rows := []RawRow{
		{"09:00 - 10:00", "Ward Round", "Doctor", "", "Dr. A"},
	}

	candidates, _ := Walk(rows, "Doctor")

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Date != Unknown {
		t.Errorf("expected date %q, got %q", Unknown, candidates[0].Date)
	}
}

func TestWalkNonMatchingRoleIgnored(t *testing.T) {
	rows := []RawRow{
		{"Mon 1 Jan"},
		{"09:00 - 10:00", "Ward Round", "Nurse", "", "N. Smith"},
		{"Nurse", "N. Jones"},
	}

	candidates, _ := Walk(rows, "Doctor")

	if len(candidates) != 0 {
		t.Errorf("expected no candidates for non-matching role, got %+v", candidates)
	}
}

func TestWalkHolderFallback(t *testing.T) {
	rows := []RawRow{
		{"Mon 1 Jan"},
		{"09:00 - 10:00", "Ward Round", "Doctor"}, // holder column absent
		{"Doctor"},                                // holder column absent
		{"Doctor", ""},                            // holder column blank
	}

	candidates, _ := Walk(rows, "Doctor")

	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	for i, c := range candidates {
		if c.RoleHolder != UnassignedHolder {
			t.Errorf("candidate %d holder = %q, expected %q", i, c.RoleHolder, UnassignedHolder)
		}
	}
}

func TestWalkEventNameStripping(t *testing.T) {
	tests := []struct {
		name      string
		secondCel string
		expected  string
	}{
		{"time range stripped", "10:00 - 11:00 Clinic", "Clinic"},
		{"plain event name", "Clinic", "Clinic"},
		{"only a time range keeps raw cell", "10:00 - 11:00", "10:00 - 11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []RawRow{
				{"Mon 1 Jan"},
				{"09:00 - 10:00", tt.secondCel, "Doctor", "", "Dr. A"},
			}

			candidates, _ := Walk(rows, "Doctor")

			if len(candidates) != 1 {
				t.Fatalf("expected 1 candidate, got %d", len(candidates))
			}
			if candidates[0].EventName != tt.expected {
				t.Errorf("event name = %q, expected %q", candidates[0].EventName, tt.expected)
			}
		})
	}
}

func TestWalkEmptyRowsSkipped(t *testing.T) {
	rows := []RawRow{
		{},
		{"Mon 1 Jan"},
		{},
		{"09:00 - 10:00", "Ward Round", "Doctor", "", "Dr. A"},
	}

	candidates, _ := Walk(rows, "Doctor")

	if len(candidates) != 1 {
		t.Errorf("expected 1 candidate, got %d", len(candidates))
	}
}

func TestWalkClassificationOrder(t *testing.T) {
	// A weekday-prefixed cell that also contains a time range is a session
	// row, not a date heading.
	rows := []RawRow{
		{"Wed 3 Jan"},
		{"Wed 09:00 - 10:00", "Ward Round", "Doctor", "", "Dr. A"},
	}

	candidates, ctx := Walk(rows, "Doctor")

	if ctx.Date.String() != "Wed 3 Jan" {
		t.Errorf("date context overwritten by session row: %q", ctx.Date.String())
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Date != "Wed 3 Jan" {
		t.Errorf("candidate date = %q, expected Wed 3 Jan", candidates[0].Date)
	}
}

func TestLabelSentinel(t *testing.T) {
	// Genuine cell text "unknown" stays distinct from the sentinel.
	l := Resolved("unknown")
	if !l.IsResolved() {
		t.Error("Resolved(unknown) should be resolved")
	}

	u := Unresolved()
	if u.IsResolved() {
		t.Error("Unresolved() should not be resolved")
	}
	if u.String() != Unknown {
		t.Errorf("unresolved label string = %q, expected %q", u.String(), Unknown)
	}
}
