package logclimb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/components"
	"github.com/abhisek/cruxlog/internal/ui/layout"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

type field int

const (
	fieldGrade field = iota
	fieldOutcome
	fieldStyle
	fieldDifficulty
	fieldTags
	fieldNotes
	fieldCount
)

// climbTags is the fixed tag vocabulary offered on the form.
var climbTags = []string{"overhang", "slab", "vert", "crimps", "slopers", "dyno", "endurance"}

type climbLoggedMsg struct {
	Err error
}

// LogClimbScreen is the form for recording one climb on the active session.
type LogClimbScreen struct {
	tracker *sess.Tracker

	scale      []string
	gradeIdx   int
	outcome    components.ToggleGroup
	style      components.ToggleGroup
	difficulty components.ToggleGroup
	tags       components.TagGroup
	notes      components.TextInput

	focus  field
	errMsg string
}

var _ screen.Screen = (*LogClimbScreen)(nil)
var _ screen.KeyHintProvider = (*LogClimbScreen)(nil)

// New creates the form preloaded with the active session's vocabulary.
func New(tracker *sess.Tracker) *LogClimbScreen {
	discipline := grades.Boulder
	if active := tracker.Active(); active != nil {
		discipline = active.Discipline
	}

	outcomes := make([]string, 0, 5)
	for _, o := range sess.OutcomesFor(discipline) {
		outcomes = append(outcomes, string(o))
	}
	styles := make([]string, 0, 2)
	for _, st := range sess.StylesFor(discipline) {
		styles = append(styles, string(st))
	}
	difficulties := make([]string, 0, 3)
	for _, d := range sess.Difficulties() {
		difficulties = append(difficulties, string(d))
	}

	return &LogClimbScreen{
		tracker: tracker,
		scale:   grades.Scale(discipline),
		outcome: components.NewToggleGroup("Outcome   ", outcomes),
		style: components.NewToggleGroupWithDefault("Style     ", styles,
			string(sess.DefaultStyle(discipline))),
		difficulty: components.NewToggleGroupWithDefault("Difficulty", difficulties,
			string(sess.DifficultyOn)),
		tags:  components.NewTagGroup("Tags      ", climbTags),
		notes: components.NewTextInput("Notes...", 120),
	}
}

func (s *LogClimbScreen) Init() tea.Cmd {
	return nil
}

func (s *LogClimbScreen) Title() string {
	return "Log Climb"
}

func (s *LogClimbScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *LogClimbScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case climbLoggedMsg:
		if msg.Err != nil {
			s.errMsg = friendlyError(msg.Err)
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == fieldNotes {
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LogClimbScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "up", "shift+tab":
		if s.focus > 0 {
			s.focus--
		}
		s.syncFocus()
		return s, nil
	case "down", "tab":
		if s.focus < fieldCount-1 {
			s.focus++
		}
		s.syncFocus()
		return s, nil
	case "enter":
		return s, s.submit()
	}

	switch s.focus {
	case fieldGrade:
		switch key {
		case "left", "h":
			if s.gradeIdx > 0 {
				s.gradeIdx--
			}
		case "right", "l":
			if s.gradeIdx < len(s.scale)-1 {
				s.gradeIdx++
			}
		}
		return s, nil

	case fieldOutcome:
		var cmd tea.Cmd
		s.outcome, cmd = s.outcome.Update(msg)
		return s, cmd
	case fieldStyle:
		var cmd tea.Cmd
		s.style, cmd = s.style.Update(msg)
		return s, cmd
	case fieldDifficulty:
		var cmd tea.Cmd
		s.difficulty, cmd = s.difficulty.Update(msg)
		return s, cmd
	case fieldTags:
		var cmd tea.Cmd
		s.tags, cmd = s.tags.Update(msg)
		return s, cmd
	case fieldNotes:
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd
	}

	return s, nil
}

// syncFocus propagates the focused field to the toggle components.
func (s *LogClimbScreen) syncFocus() {
	s.outcome.Focused = s.focus == fieldOutcome
	s.style.Focused = s.focus == fieldStyle
	s.difficulty.Focused = s.focus == fieldDifficulty
	s.tags.Focused = s.focus == fieldTags
}

func (s *LogClimbScreen) submit() tea.Cmd {
	req := sess.ClimbRequest{
		Grade:      s.scale[s.gradeIdx],
		Outcome:    sess.Outcome(s.outcome.Value()),
		Style:      sess.Style(s.style.Value()),
		Difficulty: sess.Difficulty(s.difficulty.Value()),
		Tags:       s.tags.Values(),
		Notes:      s.notes.Value(),
	}
	return func() tea.Msg {
		_, err := s.tracker.LogClimb(context.Background(), req)
		return climbLoggedMsg{Err: err}
	}
}

// friendlyError maps validation errors to form-level messages.
func friendlyError(err error) string {
	if errors.Is(err, sess.ErrMissingOutcome) {
		return "Please select an outcome"
	}
	return err.Error()
}

func (s *LogClimbScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
		b.WriteString("\n\n")
	}

	rows := []string{
		s.renderGradeRow(),
		s.outcome.View(),
		s.style.View(),
		s.difficulty.View(),
		s.tags.View(),
		s.renderNotesRow(),
	}
	form := strings.Join(rows, "\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))

	return b.String()
}

func (s *LogClimbScreen) renderGradeRow() string {
	labelStyle := theme.Hint
	if s.focus == fieldGrade {
		labelStyle = theme.Selected
	}

	grade := theme.ToggleActive.Render(s.scale[s.gradeIdx])
	arrows := fmt.Sprintf("◂ %s ▸", grade)
	if s.gradeIdx == 0 {
		arrows = fmt.Sprintf("  %s ▸", grade)
	} else if s.gradeIdx == len(s.scale)-1 {
		arrows = fmt.Sprintf("◂ %s  ", grade)
	}

	return labelStyle.Render("Grade     ") + "  " + arrows
}

func (s *LogClimbScreen) renderNotesRow() string {
	labelStyle := theme.Hint
	if s.focus == fieldNotes {
		labelStyle = theme.Selected
	}
	return labelStyle.Render("Notes     ") + "  " + s.notes.View()
}
