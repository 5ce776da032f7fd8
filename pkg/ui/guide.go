package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// guideMarkdown is the embedded field guide rendered in the guide overlay.
const guideMarkdown = `# Field Guide

The simulator answers one question: **would this lens, subject, and distance
produce a usable composition?**

## How the numbers are made

Image height on the sensor follows the pinhole projection used in photography
education:

    image height = focal length x subject height / distance

Frame fill is that image height over the (digitally cropped) sensor height.
Equivalent focal length multiplies the physical focal length by the combined
sensor and digital crop factor. Magnification compares the equivalent focal
length to a 50 mm "normal" lens, the rough 1x of human vision.

## Reading the tiers

* **Fill under 10%** - subject too small; crop digitally or get closer
* **10-30%** - environmental shot, good for habitat context
* **30-80%** - the optimal band, balanced detail and framing
* **Over 80%** - frame-filling portrait territory

Magnification up to 10x is comfortable handheld. Past 10x you want
stabilization, past 20x you are in spotting-scope territory, and past 60x
atmospheric shimmer usually costs more than the reach gains.

## Caveats

This is a decision aid, not optics. Diffraction, distortion, and atmosphere
are ignored, and fill percentages cap at 200%.
`

// GuideModel renders the markdown field guide as a toggleable overlay.
type GuideModel struct {
	visible     bool
	width       int
	height      int
	theme       Theme
	rendered    string
	renderedFor int
}

// NewGuideModel creates the guide overlay.
func NewGuideModel(theme Theme) GuideModel {
	return GuideModel{theme: theme}
}

// Toggle toggles visibility.
func (m *GuideModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if the guide is showing.
func (m GuideModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions and invalidates the cached render.
func (m *GuideModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Hide closes the guide.
func (m *GuideModel) Hide() {
	m.visible = false
}

// View renders the guide, re-wrapping only when the width changed.
func (m *GuideModel) View() string {
	if !m.visible {
		return ""
	}

	wrap := m.width - 10
	if wrap < 40 {
		wrap = 40
	}
	if wrap > 100 {
		wrap = 100
	}

	if m.rendered == "" || m.renderedFor != wrap {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dracula"),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, err := r.Render(guideMarkdown); err == nil {
				m.rendered = out
				m.renderedFor = wrap
			}
		}
		if m.rendered == "" {
			// Glamour failing is not worth crashing the app over.
			m.rendered = guideMarkdown
			m.renderedFor = wrap
		}
	}

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Primary).
		Padding(0, 1)

	return boxStyle.Render(m.rendered)
}
