// Package session holds the in-memory model of a climbing session: the
// single-active-session tracker, the climb-list mutation rules, and the
// statistics computed over active and historical sessions.
package session

import (
	"time"

	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/store"
)

// Outcome is the result of one climb attempt.
type Outcome string

const (
	OutcomeWarmup Outcome = "warmup"
	OutcomeFlash  Outcome = "flash"
	OutcomeSend   Outcome = "send"
	OutcomeDirty  Outcome = "dirty" // rope only: topped out with hangs
	OutcomeFail   Outcome = "fail"
)

// Style is how the climb was attempted, discipline-dependent.
type Style string

const (
	StyleWall    Style = "wall"
	StyleBoard   Style = "board"
	StyleLead    Style = "lead"
	StyleToprope Style = "toprope"
)

// Difficulty is a subjective effort rating for the attempt.
type Difficulty string

const (
	DifficultyOn     Difficulty = "on"
	DifficultyNormal Difficulty = "normal"
	DifficultyOff    Difficulty = "off"
)

// Climb is one logged attempt. Climbs are appended by LogClimb, removed by
// index, and never otherwise mutated.
type Climb struct {
	Grade      string
	Outcome    Outcome
	Style      Style
	Difficulty Difficulty
	Tags       []string
	Notes      string
	LoggedAt   time.Time
}

// Session is the aggregate root. Climbs stay in insertion order; newest-first
// display is a render-time view, never a stored reorder.
type Session struct {
	ID              int
	Gym             string
	Discipline      grades.Discipline
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int
	Climbs          []Climb
}

// successOutcomes is per-discipline configuration: which outcomes count as a
// send. Rope counts a dirty top-out; boulder does not use dirty at all.
var successOutcomes = map[grades.Discipline]map[Outcome]bool{
	grades.Boulder: {OutcomeFlash: true, OutcomeSend: true},
	grades.Rope:    {OutcomeFlash: true, OutcomeSend: true, OutcomeDirty: true},
}

// IsSend reports whether an outcome counts as a successful climb for the
// discipline.
func IsSend(d grades.Discipline, o Outcome) bool {
	return successOutcomes[d][o]
}

// OutcomesFor returns the outcome vocabulary for a discipline.
func OutcomesFor(d grades.Discipline) []Outcome {
	if d == grades.Rope {
		return []Outcome{OutcomeWarmup, OutcomeFlash, OutcomeSend, OutcomeDirty, OutcomeFail}
	}
	return []Outcome{OutcomeWarmup, OutcomeFlash, OutcomeSend, OutcomeFail}
}

// StylesFor returns the style vocabulary for a discipline.
func StylesFor(d grades.Discipline) []Style {
	if d == grades.Rope {
		return []Style{StyleLead, StyleToprope}
	}
	return []Style{StyleWall, StyleBoard}
}

// DefaultStyle is the style preselected when logging a climb.
func DefaultStyle(d grades.Discipline) Style {
	if d == grades.Rope {
		return StyleLead
	}
	return StyleWall
}

// Difficulties returns the effort-rating vocabulary, best feel first.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyOn, DifficultyNormal, DifficultyOff}
}

// FromDoc converts a stored session document into the domain model.
func FromDoc(doc store.SessionDoc) Session {
	climbs := make([]Climb, 0, len(doc.Climbs))
	for _, c := range doc.Climbs {
		climbs = append(climbs, Climb{
			Grade:      c.Grade,
			Outcome:    Outcome(c.Outcome),
			Style:      Style(c.Style),
			Difficulty: Difficulty(c.Difficulty),
			Tags:       c.Tags,
			Notes:      c.Notes,
			LoggedAt:   c.LoggedAt,
		})
	}
	return Session{
		ID:              doc.ID,
		Gym:             doc.Gym,
		Discipline:      grades.Discipline(doc.Discipline),
		StartTime:       doc.StartTime,
		EndTime:         doc.EndTime,
		DurationMinutes: doc.DurationMinutes,
		Climbs:          climbs,
	}
}

// FromDocs converts a list of stored documents, preserving order.
func FromDocs(docs []store.SessionDoc) []Session {
	sessions := make([]Session, 0, len(docs))
	for _, doc := range docs {
		sessions = append(sessions, FromDoc(doc))
	}
	return sessions
}

func climbToDoc(c Climb) store.ClimbDoc {
	return store.ClimbDoc{
		Grade:      c.Grade,
		Outcome:    string(c.Outcome),
		Style:      string(c.Style),
		Difficulty: string(c.Difficulty),
		Tags:       c.Tags,
		Notes:      c.Notes,
		LoggedAt:   c.LoggedAt,
	}
}

func climbsToDocs(climbs []Climb) []store.ClimbDoc {
	docs := make([]store.ClimbDoc, 0, len(climbs))
	for _, c := range climbs {
		docs = append(docs, climbToDoc(c))
	}
	return docs
}
