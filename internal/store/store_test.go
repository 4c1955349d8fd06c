package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

const testUser = "7a1e9c0a-5a80-4f7d-9f6e-1d2b3c4d5e6f"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestSession(t *testing.T, repo SessionRepo, gym string, start time.Time) int {
	t.Helper()
	id, err := repo.CreateSession(context.Background(), testUser, SessionDoc{
		Gym:        gym,
		Discipline: "boulder",
		StartTime:  start,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return id
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCreateAndGetSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	id := createTestSession(t, repo, "Crag City", start)
	if id == 0 {
		t.Fatal("expected a non-zero session id")
	}

	doc, err := repo.GetSession(ctx, testUser, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if doc.Gym != "Crag City" {
		t.Errorf("gym = %q, want Crag City", doc.Gym)
	}
	if doc.Discipline != "boulder" {
		t.Errorf("discipline = %q, want boulder", doc.Discipline)
	}
	if !doc.StartTime.Equal(start) {
		t.Errorf("start time = %v, want %v", doc.StartTime, start)
	}
	if doc.EndTime != nil {
		t.Error("expected nil end time on a fresh session")
	}
	if len(doc.Climbs) != 0 {
		t.Errorf("climbs = %d, want 0", len(doc.Climbs))
	}
}

func TestGetSessionScopedByUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	id := createTestSession(t, repo, "Crag City", time.Now())

	_, err := repo.GetSession(ctx, "someone-else", id)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user get error = %v, want ErrNotFound", err)
	}
}

func TestAppendClimb(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	id := createTestSession(t, repo, "Crag City", time.Now())

	logged := time.Now().UTC().Truncate(time.Second)
	err := repo.AppendClimb(ctx, testUser, id, ClimbDoc{
		Grade:      "V3",
		Outcome:    "send",
		Style:      "wall",
		Difficulty: "normal",
		Tags:       []string{"crimpy", "overhang"},
		Notes:      "stuck the dyno",
		LoggedAt:   logged,
	})
	if err != nil {
		t.Fatalf("append climb: %v", err)
	}
	err = repo.AppendClimb(ctx, testUser, id, ClimbDoc{
		Grade: "V5", Outcome: "fail", Style: "board", Difficulty: "on", LoggedAt: logged,
	})
	if err != nil {
		t.Fatalf("append second climb: %v", err)
	}

	doc, err := repo.GetSession(ctx, testUser, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(doc.Climbs) != 2 {
		t.Fatalf("climbs = %d, want 2", len(doc.Climbs))
	}
	if doc.Climbs[0].Grade != "V3" || doc.Climbs[1].Grade != "V5" {
		t.Errorf("climb order = [%s %s], want [V3 V5]", doc.Climbs[0].Grade, doc.Climbs[1].Grade)
	}
	if len(doc.Climbs[0].Tags) != 2 {
		t.Errorf("tags = %v, want 2 entries", doc.Climbs[0].Tags)
	}
}

func TestOverwriteClimbs(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	id := createTestSession(t, repo, "Crag City", time.Now())
	for _, g := range []string{"V1", "V2", "V3"} {
		if err := repo.AppendClimb(ctx, testUser, id, ClimbDoc{Grade: g, Outcome: "send", Style: "wall", Difficulty: "on", LoggedAt: time.Now()}); err != nil {
			t.Fatalf("append %s: %v", g, err)
		}
	}

	doc, _ := repo.GetSession(ctx, testUser, id)
	// Drop the middle climb and write the list back.
	remaining := append(doc.Climbs[:1], doc.Climbs[2:]...)
	if err := repo.OverwriteClimbs(ctx, testUser, id, remaining); err != nil {
		t.Fatalf("overwrite climbs: %v", err)
	}

	doc, err := repo.GetSession(ctx, testUser, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if len(doc.Climbs) != 2 {
		t.Fatalf("climbs = %d, want 2", len(doc.Climbs))
	}
	if doc.Climbs[0].Grade != "V1" || doc.Climbs[1].Grade != "V3" {
		t.Errorf("climb order = [%s %s], want [V1 V3]", doc.Climbs[0].Grade, doc.Climbs[1].Grade)
	}
}

func TestCloseSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	start := time.Now().UTC().Truncate(time.Second)
	id := createTestSession(t, repo, "Crag City", start)

	end := start.Add(95 * time.Minute)
	if err := repo.CloseSession(ctx, testUser, id, end, 95); err != nil {
		t.Fatalf("close session: %v", err)
	}

	doc, err := repo.GetSession(ctx, testUser, id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if doc.EndTime == nil || !doc.EndTime.Equal(end) {
		t.Errorf("end time = %v, want %v", doc.EndTime, end)
	}
	if doc.DurationMinutes != 95 {
		t.Errorf("duration = %d, want 95", doc.DurationMinutes)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	createTestSession(t, repo, "oldest", base.Add(-2*time.Hour))
	createTestSession(t, repo, "newest", base)
	createTestSession(t, repo, "middle", base.Add(-1*time.Hour))

	docs, err := repo.ListSessions(ctx, testUser)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("sessions = %d, want 3", len(docs))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if docs[i].Gym != w {
			t.Errorf("docs[%d].Gym = %q, want %q", i, docs[i].Gym, w)
		}
	}
}

func TestDeleteSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	id := createTestSession(t, repo, "Crag City", time.Now())

	if err := repo.DeleteSession(ctx, testUser, id); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	_, err := repo.GetSession(ctx, testUser, id)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete error = %v, want ErrNotFound", err)
	}

	err = repo.DeleteSession(ctx, testUser, id)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}
