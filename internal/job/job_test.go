package job

import (
	"strings"
	"testing"
	"time"
)

func TestIdentityOfDeterministic(t *testing.T) {
	id1 := IdentityOf("Mon 1 Jan", "Ward Round", "Dr. A")
	id2 := IdentityOf("Mon 1 Jan", "Ward Round", "Dr. A")

	if id1 != id2 {
		t.Errorf("IdentityOf should be deterministic, got %s vs %s", id1, id2)
	}

	if len(id1) != 64 { // SHA-256 produces 64 hex characters
		t.Errorf("expected hash length of 64, got %d", len(id1))
	}

	if id1 != strings.ToLower(id1) {
		t.Error("expected lowercase hex hash")
	}
}

func TestIdentityOfDistinguishesFields(t *testing.T) {
	a := IdentityOf("Mon 1 Jan", "Ward Round", "Dr. A")
	b := IdentityOf("Mon 1 Jan", "Ward Round", "Dr. B")

	if a == b {
		t.Error("different role holders should produce different hashes")
	}
}

func TestIdentityOfFieldBoundaries(t *testing.T) {
	// Concatenation across field boundaries must not collide.
	a := IdentityOf("a", "bc", "")
	b := IdentityOf("ab", "c", "")

	if a == b {
		t.Error("field boundary collision: IdentityOf([a bc]) == IdentityOf([ab c])")
	}
}

func TestIdentityOfNormalization(t *testing.T) {
	tests := []struct {
		name string
		x    []string
		y    []string
		same bool
	}{
		{"case insensitive", []string{"Ward Round"}, []string{"ward round"}, true},
		{"whitespace collapsed", []string{"Ward   Round"}, []string{"Ward Round"}, true},
		{"leading and trailing trimmed", []string{"  Ward Round  "}, []string{"Ward Round"}, true},
		{"content differs", []string{"Ward Round"}, []string{"Ward Rounds"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentityOf(tt.x...) == IdentityOf(tt.y...)
			if got != tt.same {
				t.Errorf("IdentityOf(%v) == IdentityOf(%v): got %v, want %v", tt.x, tt.y, got, tt.same)
			}
		})
	}
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	c := Candidate{Date: "Mon 1 Jan", EventName: "Ward Round", RoleHolder: "Dr. A"}

	rec := NewRecord(c, now)

	if rec.JobID != IdentityOf(c.Date, c.EventName, c.RoleHolder) {
		t.Error("JobID should equal the identity hash of the candidate fields")
	}
	if rec.Date != c.Date || rec.EventName != c.EventName || rec.RoleHolder != c.RoleHolder {
		t.Error("record fields should copy the candidate fields")
	}
	if rec.DateResolved != "Mon 1 Jan" {
		t.Errorf("expected month-form heading preserved as canonical date, got %q", rec.DateResolved)
	}
	if rec.IsVacancy {
		t.Error("record with a named holder should not be a vacancy")
	}
	if !rec.SavedAt.Equal(now) {
		t.Errorf("expected SavedAt %v, got %v", now, rec.SavedAt)
	}
}

func TestNewRecordResolvesRelativeDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 50, 0, 0, time.UTC)

	rec := NewRecord(Candidate{Date: "Today", EventName: "Ward Round", RoleHolder: "Dr. A"}, now)

	if rec.DateResolved != "2025-06-15" {
		t.Errorf("expected relative heading resolved to 2025-06-15, got %q", rec.DateResolved)
	}
	if rec.Date != "Today" {
		t.Errorf("raw heading text must survive unchanged, got %q", rec.Date)
	}
}

func TestIsVacant(t *testing.T) {
	tests := []struct {
		holder string
		want   bool
	}{
		{"Unassigned", true},
		{"UNASSIGNED", true},
		{"currently unassigned", true},
		{"Dr. A", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.holder, func(t *testing.T) {
			if got := IsVacant(tt.holder); got != tt.want {
				t.Errorf("IsVacant(%q) = %v, want %v", tt.holder, got, tt.want)
			}
		})
	}
}
