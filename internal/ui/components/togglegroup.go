package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cruxlog/internal/ui/theme"
)

// ToggleGroup is a horizontal single-select group of options. At most one
// option is active; left/right move the cursor and space/enter toggle the
// option under it. Toggling an active option clears the selection.
type ToggleGroup struct {
	Label    string
	Options  []string
	Cursor   int
	Selected int // index into Options, -1 when nothing selected
	Focused  bool
}

// NewToggleGroup creates a group with no active option.
func NewToggleGroup(label string, options []string) ToggleGroup {
	return ToggleGroup{
		Label:    label,
		Options:  options,
		Selected: -1,
	}
}

// NewToggleGroupWithDefault creates a group with the given option active.
func NewToggleGroupWithDefault(label string, options []string, selected string) ToggleGroup {
	g := NewToggleGroup(label, options)
	for i, opt := range options {
		if opt == selected {
			g.Selected = i
			g.Cursor = i
			break
		}
	}
	return g
}

// Value returns the active option, or "" when nothing is selected.
func (g ToggleGroup) Value() string {
	if g.Selected < 0 || g.Selected >= len(g.Options) {
		return ""
	}
	return g.Options[g.Selected]
}

// Update handles keyboard input. Only acts when the group is focused.
func (g ToggleGroup) Update(msg tea.Msg) (ToggleGroup, tea.Cmd) {
	if !g.Focused {
		return g, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < len(g.Options)-1 {
			g.Cursor++
		}
	case " ", "space", "enter":
		if g.Selected == g.Cursor {
			g.Selected = -1
		} else {
			g.Selected = g.Cursor
		}
	}

	return g, nil
}

// View renders the label and the option row.
func (g ToggleGroup) View() string {
	var b strings.Builder

	labelStyle := theme.Hint
	if g.Focused {
		labelStyle = theme.Selected
	}
	b.WriteString(labelStyle.Render(g.Label))
	b.WriteString("  ")

	for i, opt := range g.Options {
		style := theme.ToggleInactive
		switch {
		case i == g.Selected:
			style = theme.ToggleActive
		case g.Focused && i == g.Cursor:
			style = theme.ToggleFocused
		}
		b.WriteString(style.Render(opt))
		if i < len(g.Options)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
