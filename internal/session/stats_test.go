package session

import (
	"testing"
	"time"

	"github.com/abhisek/cruxlog/internal/grades"
)

func TestComputeEmptySession(t *testing.T) {
	stats, err := Compute(&Session{Discipline: grades.Boulder})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.Climbs != 0 || stats.Sends != 0 {
		t.Errorf("counts = %d/%d, want 0/0", stats.Climbs, stats.Sends)
	}
	if stats.SendRate != 0 {
		t.Errorf("send rate = %d, want 0 (no division error)", stats.SendRate)
	}
	if stats.HighGrade != "" {
		t.Errorf("high grade = %q, want none", stats.HighGrade)
	}
}

func TestComputeNoSends(t *testing.T) {
	s := &Session{Discipline: grades.Boulder, Climbs: []Climb{
		{Grade: "V3", Outcome: OutcomeFail},
		{Grade: "V1", Outcome: OutcomeWarmup},
	}}

	stats, err := Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.Sends != 0 || stats.SendRate != 0 {
		t.Errorf("sends/rate = %d/%d, want 0/0", stats.Sends, stats.SendRate)
	}
	if stats.HighGrade != "" {
		t.Errorf("high grade = %q, want none when nothing sent", stats.HighGrade)
	}
}

func TestComputeHighGradeIgnoresFailures(t *testing.T) {
	// The V6 fail must not become the high point.
	s := &Session{Discipline: grades.Boulder, Climbs: []Climb{
		{Grade: "V2", Outcome: OutcomeSend},
		{Grade: "V6", Outcome: OutcomeFail},
		{Grade: "V4", Outcome: OutcomeFlash},
	}}

	stats, err := Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.HighGrade != "V4" {
		t.Errorf("high grade = %q, want V4", stats.HighGrade)
	}
}

func TestComputeHighGradeTies(t *testing.T) {
	s := &Session{Discipline: grades.Rope, Climbs: []Climb{
		{Grade: "5.10", Outcome: OutcomeSend},
		{Grade: "5.10", Outcome: OutcomeDirty},
	}}

	stats, err := Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.HighGrade != "5.10" {
		t.Errorf("high grade = %q, want 5.10", stats.HighGrade)
	}
}

func TestComputeRopeCountsDirty(t *testing.T) {
	s := &Session{Discipline: grades.Rope, Climbs: []Climb{
		{Grade: "5.9", Outcome: OutcomeDirty},
		{Grade: "5.8", Outcome: OutcomeWarmup},
	}}

	stats, err := Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.Sends != 1 {
		t.Errorf("sends = %d, want 1 (dirty counts on rope)", stats.Sends)
	}
	if stats.HighGrade != "5.9" {
		t.Errorf("high grade = %q, want 5.9", stats.HighGrade)
	}
}

func TestComputeUnknownStoredGrade(t *testing.T) {
	s := &Session{Discipline: grades.Boulder, Climbs: []Climb{
		{Grade: "V99", Outcome: OutcomeSend},
	}}

	if _, err := Compute(s); err == nil {
		t.Error("expected error for out-of-scale stored grade")
	}
}

func TestAggregate(t *testing.T) {
	a := &Session{Discipline: grades.Boulder, Climbs: []Climb{
		{Grade: "V1", Outcome: OutcomeSend},
		{Grade: "V2", Outcome: OutcomeFail},
		{Grade: "V3", Outcome: OutcomeFlash},
	}}
	b := &Session{Discipline: grades.Rope, Climbs: []Climb{
		{Grade: "5.8", Outcome: OutcomeSend},
		{Grade: "5.9", Outcome: OutcomeDirty},
		{Grade: "5.9", Outcome: OutcomeFail},
		{Grade: "5.10-", Outcome: OutcomeFlash},
		{Grade: "5.7", Outcome: OutcomeWarmup},
	}}

	totals := Aggregate([]Session{*a, *b})

	if totals.Sessions != 2 {
		t.Errorf("sessions = %d, want 2", totals.Sessions)
	}
	if totals.Climbs != 8 {
		t.Errorf("climbs = %d, want 8", totals.Climbs)
	}
	// 5 sends over 8 climbs: round(62.5) = 63.
	if totals.SendRate != 63 {
		t.Errorf("send rate = %d, want 63", totals.SendRate)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	if totals.Climbs != 0 || totals.Sessions != 0 || totals.SendRate != 0 {
		t.Errorf("totals = %+v, want zeros", totals)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{65 * time.Second, "1:05"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{time.Hour + 5*time.Second, "1:00:05"},
		{2*time.Hour + 34*time.Minute + 7*time.Second, "2:34:07"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "60m"},
		{61, "1h 1m"},
		{95, "1h 35m"},
		{125, "2h 5m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
