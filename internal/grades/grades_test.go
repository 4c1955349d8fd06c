package grades

import (
	"errors"
	"testing"
)

func TestScaleOrder(t *testing.T) {
	b := Scale(Boulder)
	if b[0] != "V0" {
		t.Errorf("easiest boulder grade = %q, want V0", b[0])
	}
	if b[len(b)-1] != "V10" {
		t.Errorf("hardest boulder grade = %q, want V10", b[len(b)-1])
	}

	r := Scale(Rope)
	if r[0] != "5.6" {
		t.Errorf("easiest rope grade = %q, want 5.6", r[0])
	}
	if r[len(r)-1] != "5.12+" {
		t.Errorf("hardest rope grade = %q, want 5.12+", r[len(r)-1])
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		discipline Discipline
		grade      string
		want       int
	}{
		{Boulder, "V0", 0},
		{Boulder, "V5", 5},
		{Boulder, "V10", 10},
		{Rope, "5.6", 0},
		{Rope, "5.9-", 4},
		{Rope, "5.9+", 6},
		{Rope, "5.12+", 15},
	}

	for _, tt := range tests {
		got, err := Rank(tt.discipline, tt.grade)
		if err != nil {
			t.Errorf("Rank(%s, %s): %v", tt.discipline, tt.grade, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Rank(%s, %s) = %d, want %d", tt.discipline, tt.grade, got, tt.want)
		}
	}
}

func TestRankUnknownGrade(t *testing.T) {
	tests := []struct {
		discipline Discipline
		grade      string
	}{
		{Boulder, "V11"},
		{Boulder, "5.10"},
		{Rope, "V3"},
		{Rope, "5.13"},
		{Boulder, ""},
	}

	for _, tt := range tests {
		_, err := Rank(tt.discipline, tt.grade)
		if !errors.Is(err, ErrUnknownGrade) {
			t.Errorf("Rank(%s, %q) error = %v, want ErrUnknownGrade", tt.discipline, tt.grade, err)
		}
	}
}

func TestHighest(t *testing.T) {
	got, err := Highest(Boulder, []string{"V2", "V5", "V4"})
	if err != nil {
		t.Fatalf("highest: %v", err)
	}
	if got != "V5" {
		t.Errorf("highest = %q, want V5", got)
	}
}

func TestHighestTies(t *testing.T) {
	got, err := Highest(Rope, []string{"5.9", "5.9", "5.8"})
	if err != nil {
		t.Fatalf("highest: %v", err)
	}
	if got != "5.9" {
		t.Errorf("highest = %q, want 5.9", got)
	}
}

func TestHighestSingle(t *testing.T) {
	got, err := Highest(Boulder, []string{"V0"})
	if err != nil {
		t.Fatalf("highest: %v", err)
	}
	if got != "V0" {
		t.Errorf("highest = %q, want V0", got)
	}
}

func TestHighestEmpty(t *testing.T) {
	if _, err := Highest(Boulder, nil); err == nil {
		t.Error("expected error on empty input")
	}
}

func TestHighestUnknownGrade(t *testing.T) {
	_, err := Highest(Boulder, []string{"V2", "V99"})
	if !errors.Is(err, ErrUnknownGrade) {
		t.Errorf("error = %v, want ErrUnknownGrade", err)
	}
}
