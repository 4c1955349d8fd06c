package session

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/cruxlog/internal/grades"
)

// Stats summarizes one session, active or historical.
type Stats struct {
	Climbs    int
	Sends     int
	SendRate  int    // integer percentage, 0 when no climbs
	HighGrade string // hardest grade sent, "" when no sends
}

// Totals is the landing-dashboard fold over all sessions. Recomputed from
// scratch on every call; one user's history stays small.
type Totals struct {
	Climbs   int
	Sessions int
	SendRate int
}

// Compute derives the session statistics. It errors only when a stored climb
// carries a grade outside the discipline's scale.
func Compute(s *Session) (Stats, error) {
	stats := Stats{Climbs: len(s.Climbs)}

	var sent []string
	for _, c := range s.Climbs {
		if IsSend(s.Discipline, c.Outcome) {
			stats.Sends++
			sent = append(sent, c.Grade)
		}
	}

	stats.SendRate = ratePercent(stats.Sends, stats.Climbs)

	if len(sent) > 0 {
		high, err := grades.Highest(s.Discipline, sent)
		if err != nil {
			return Stats{}, fmt.Errorf("high grade: %w", err)
		}
		stats.HighGrade = high
	}

	return stats, nil
}

// Aggregate folds climb and send counts over the full session history.
func Aggregate(sessions []Session) Totals {
	totals := Totals{Sessions: len(sessions)}

	var sends int
	for _, s := range sessions {
		totals.Climbs += len(s.Climbs)
		for _, c := range s.Climbs {
			if IsSend(s.Discipline, c.Outcome) {
				sends++
			}
		}
	}

	totals.SendRate = ratePercent(sends, totals.Climbs)
	return totals
}

// ratePercent is sends over climbs as a rounded integer percentage,
// 0 for an empty session rather than a division error.
func ratePercent(sends, climbs int) int {
	if climbs == 0 {
		return 0
	}
	return int(math.Round(float64(sends) / float64(climbs) * 100))
}

// FormatElapsed renders wall-clock elapsed time for the session timer:
// H:MM:SS past the first hour, M:SS before it.
func FormatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatMinutes renders a closed session's duration for history rows.
func FormatMinutes(minutes int) string {
	if minutes > 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
