// Package grades holds the ordered grade catalogs for each climbing
// discipline and the ranking operations used to compare climbs.
//
// Grades are community labels, not numbers, and rope grades carry modifier
// characters (5.9-, 5.9, 5.9+). Ranking by catalog position avoids parsing
// grade strings: index 0 is the easiest grade in the scale.
package grades

import (
	"errors"
	"fmt"
)

// Discipline selects the grade scale and vocabulary for a session.
type Discipline string

const (
	Boulder Discipline = "boulder"
	Rope    Discipline = "rope"
)

// ErrUnknownGrade is returned when a grade label is not part of the
// discipline's scale. Callers must never substitute a default rank;
// a sentinel index would corrupt high-point computation.
var ErrUnknownGrade = errors.New("unknown grade")

var boulderScale = []string{
	"V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9", "V10",
}

var ropeScale = []string{
	"5.6", "5.7", "5.8", "5.8+",
	"5.9-", "5.9", "5.9+",
	"5.10-", "5.10", "5.10+",
	"5.11-", "5.11", "5.11+",
	"5.12-", "5.12", "5.12+",
}

// Scale returns the ordered grade catalog for a discipline, easiest first.
// The returned slice must not be mutated.
func Scale(d Discipline) []string {
	if d == Rope {
		return ropeScale
	}
	return boulderScale
}

// Rank returns the position of grade within the discipline's scale.
func Rank(d Discipline, grade string) (int, error) {
	for i, g := range Scale(d) {
		if g == grade {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q not in %s scale", ErrUnknownGrade, grade, d)
}

// Highest returns the label with the maximum rank among the given grades.
// It errors on an empty input; callers handle the "no sends yet" case
// before ranking.
func Highest(d Discipline, gs []string) (string, error) {
	if len(gs) == 0 {
		return "", errors.New("no grades to rank")
	}

	best := gs[0]
	bestRank, err := Rank(d, best)
	if err != nil {
		return "", err
	}
	for _, g := range gs[1:] {
		r, err := Rank(d, g)
		if err != nil {
			return "", err
		}
		if r > bestRank {
			best = g
			bestRank = r
		}
	}
	return best, nil
}
