package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// THEME - Dracula-inspired palette with adaptive colors
// ══════════════════════════════════════════════════════════════════════════════

// Theme bundles the renderer and the semantic colors every widget draws with.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Danger  lipgloss.AdaptiveColor
}

// DefaultTheme creates the standard theme bound to a renderer.
func DefaultTheme(renderer *lipgloss.Renderer) Theme {
	return Theme{
		Renderer:  renderer,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56C2", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#44527E", Dark: "#6272A4"},
		Text:      lipgloss.AdaptiveColor{Light: "#282A36", Dark: "#F8F8F2"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#5A5A5A", Dark: "#BFBFBF"},
		Muted:     lipgloss.AdaptiveColor{Light: "#8A92B2", Dark: "#6272A4"},
		Border:    lipgloss.AdaptiveColor{Light: "#C5C8D6", Dark: "#44475A"},
		Success:   lipgloss.AdaptiveColor{Light: "#1E9E48", Dark: "#50FA7B"},
		Info:      lipgloss.AdaptiveColor{Light: "#1D7F99", Dark: "#8BE9FD"},
		Warning:   lipgloss.AdaptiveColor{Light: "#B8762A", Dark: "#FFB86C"},
		Danger:    lipgloss.AdaptiveColor{Light: "#C23A3A", Dark: "#FF5555"},
	}
}

// CompositionColor maps a composition tier to its badge color.
func (t Theme) CompositionColor(tier model.CompositionTier) lipgloss.AdaptiveColor {
	switch tier {
	case model.CompositionTooSmall:
		return t.Danger
	case model.CompositionEnvironmental:
		return t.Info
	case model.CompositionOptimal:
		return t.Success
	case model.CompositionCloseUp:
		return t.Warning
	}
	return t.Muted
}

// MagnificationColor maps a magnification tier to its badge color.
func (t Theme) MagnificationColor(tier model.MagnificationTier) lipgloss.AdaptiveColor {
	switch tier {
	case model.MagnificationHandheld:
		return t.Success
	case model.MagnificationStabilized:
		return t.Info
	case model.MagnificationSpottingScope:
		return t.Warning
	case model.MagnificationAstronomical:
		return t.Danger
	}
	return t.Muted
}

// ══════════════════════════════════════════════════════════════════════════════
// BADGES AND BARS
// ══════════════════════════════════════════════════════════════════════════════

// badgeLabel is the short uppercase text shown on tier badges.
func badgeLabel(tier string) string {
	switch tier {
	case string(model.CompositionTooSmall):
		return "TOO SMALL"
	case string(model.CompositionEnvironmental):
		return "ENVIRONMENTAL"
	case string(model.CompositionOptimal):
		return "OPTIMAL"
	case string(model.CompositionCloseUp):
		return "CLOSE-UP"
	case string(model.MagnificationHandheld):
		return "HANDHELD"
	case string(model.MagnificationStabilized):
		return "STABILIZE"
	case string(model.MagnificationSpottingScope):
		return "SPOTTING SCOPE"
	case string(model.MagnificationAstronomical):
		return "ASTRONOMICAL"
	}
	return "?"
}

// RenderCompositionBadge returns a styled badge for a composition tier.
func RenderCompositionBadge(tier model.CompositionTier, t Theme) string {
	return t.Renderer.NewStyle().
		Foreground(t.CompositionColor(tier)).
		Bold(true).
		Render("[" + badgeLabel(string(tier)) + "]")
}

// RenderMagnificationBadge returns a styled badge for a magnification tier.
func RenderMagnificationBadge(tier model.MagnificationTier, t Theme) string {
	return t.Renderer.NewStyle().
		Foreground(t.MagnificationColor(tier)).
		Bold(true).
		Render("[" + badgeLabel(string(tier)) + "]")
}

// RenderMiniBar renders a horizontal bar for a value between 0 and 1.
func RenderMiniBar(value float64, width int, color lipgloss.AdaptiveColor, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Renderer.NewStyle().Foreground(color).Render(bar)
}

// RenderDivider renders a horizontal divider line.
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
}

// Truncate cuts a string to the given display width, appending an ellipsis.
// Width is measured in terminal cells, not bytes.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
