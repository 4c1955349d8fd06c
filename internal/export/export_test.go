package export

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/cruxlog/internal/store"
)

func sampleDocs() []store.SessionDoc {
	start := time.Date(2026, 2, 7, 17, 30, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)
	return []store.SessionDoc{
		{
			ID:              1,
			Gym:             "Crag City",
			Discipline:      "boulder",
			StartTime:       start,
			EndTime:         &end,
			DurationMinutes: 95,
			Climbs: []store.ClimbDoc{
				{Grade: "V3", Outcome: "send", Style: "wall", Difficulty: "on", Tags: []string{"crimpy"}, LoggedAt: start.Add(10 * time.Minute)},
				{Grade: "V5", Outcome: "fail", Style: "board", Difficulty: "off", LoggedAt: start.Add(40 * time.Minute)},
			},
		},
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	data, err := Marshal(sampleDocs())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	a, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Version != ArchiveVersion {
		t.Errorf("version = %d, want %d", a.Version, ArchiveVersion)
	}
	if len(a.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(a.Sessions))
	}
	s := a.Sessions[0]
	if s.Gym != "Crag City" || s.Discipline != "boulder" || s.DurationMinutes != 95 {
		t.Errorf("session = %+v", s)
	}
	if len(s.Climbs) != 2 || s.Climbs[0].Grade != "V3" {
		t.Errorf("climbs = %+v", s.Climbs)
	}
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Unmarshal(data); err != nil {
		t.Errorf("empty archive should validate: %v", err)
	}
}

func TestUnmarshalRejectsInvalidJSON(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestUnmarshalRejectsBadDiscipline(t *testing.T) {
	raw := `{"version": 1, "sessions": [{"gym": "X", "discipline": "ice", "start_time": "2026-02-07T17:30:00Z"}]}`
	_, err := Unmarshal([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "validation") {
		t.Errorf("error = %v, want validation failure", err)
	}
}

func TestUnmarshalRejectsBadOutcome(t *testing.T) {
	raw := `{"version": 1, "sessions": [{"gym": "X", "discipline": "boulder", "start_time": "2026-02-07T17:30:00Z",
		"climbs": [{"grade": "V1", "outcome": "crushed", "logged_at": "2026-02-07T17:45:00Z"}]}]}`
	if _, err := Unmarshal([]byte(raw)); err == nil {
		t.Error("expected validation failure for unknown outcome")
	}
}

func TestUnmarshalRejectsMissingGym(t *testing.T) {
	raw := `{"version": 1, "sessions": [{"discipline": "boulder", "start_time": "2026-02-07T17:30:00Z"}]}`
	if _, err := Unmarshal([]byte(raw)); err == nil {
		t.Error("expected validation failure for missing gym")
	}
}
