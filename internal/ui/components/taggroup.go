package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cruxlog/internal/ui/theme"
)

// TagGroup is a horizontal multi-select group. Any number of options may be
// active at once; order of selection is preserved in Values.
type TagGroup struct {
	Label   string
	Options []string
	Cursor  int
	Focused bool

	active map[int]bool
	order  []int
}

// NewTagGroup creates a group with nothing selected.
func NewTagGroup(label string, options []string) TagGroup {
	return TagGroup{
		Label:   label,
		Options: options,
		active:  make(map[int]bool),
	}
}

// Values returns the active options in the order they were toggled on.
func (g TagGroup) Values() []string {
	vals := make([]string, 0, len(g.order))
	for _, i := range g.order {
		vals = append(vals, g.Options[i])
	}
	return vals
}

// Update handles keyboard input. Only acts when the group is focused.
func (g TagGroup) Update(msg tea.Msg) (TagGroup, tea.Cmd) {
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
		if g.active[g.Cursor] {
			delete(g.active, g.Cursor)
			for i, idx := range g.order {
				if idx == g.Cursor {
					g.order = append(g.order[:i], g.order[i+1:]...)
					break
				}
			}
		} else {
			g.active[g.Cursor] = true
			g.order = append(g.order, g.Cursor)
		}
	}

	return g, nil
}

// View renders the label and the option row.
func (g TagGroup) View() string {
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
		case g.active[i]:
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
