package ui

import "strings"

// ChoiceRow cycles through a fixed list of options, one active at a time.
// Selection state lives here in the presentation layer; the engine only
// ever sees the resolved catalog values.
type ChoiceRow struct {
	Label   string
	Options []string
	Index   int
}

// NewChoiceRow creates a choice row with the first option active.
func NewChoiceRow(label string, options []string) ChoiceRow {
	return ChoiceRow{Label: label, Options: options}
}

// Next advances to the following option, wrapping around.
func (c *ChoiceRow) Next() {
	if len(c.Options) == 0 {
		return
	}
	c.Index = (c.Index + 1) % len(c.Options)
}

// Prev steps back to the previous option, wrapping around.
func (c *ChoiceRow) Prev() {
	if len(c.Options) == 0 {
		return
	}
	c.Index = (c.Index - 1 + len(c.Options)) % len(c.Options)
}

// Selected returns the active option text.
func (c ChoiceRow) Selected() string {
	if c.Index < 0 || c.Index >= len(c.Options) {
		return ""
	}
	return c.Options[c.Index]
}

// View renders the row with every option visible and the active one marked.
func (c ChoiceRow) View(focused bool, t Theme) string {
	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Width(14)
	if focused {
		labelStyle = labelStyle.Foreground(t.Primary).Bold(true)
	}

	activeStyle := t.Renderer.NewStyle().Foreground(t.Primary).Bold(true)
	if !focused {
		activeStyle = t.Renderer.NewStyle().Foreground(t.Text).Bold(true)
	}
	idleStyle := t.Renderer.NewStyle().Foreground(t.Muted)

	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Index {
			parts[i] = activeStyle.Render("(" + opt + ")")
		} else {
			parts[i] = idleStyle.Render(" " + opt + " ")
		}
	}

	cursor := "  "
	if focused {
		cursor = "▸ "
	}
	return cursor + labelStyle.Render(c.Label) + strings.Join(parts, " ")
}
