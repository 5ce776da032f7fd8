package ui

import (
	"fmt"
	"strings"
)

// Slider is a keyboard-driven value slider. It owns the clamping the engine
// contract expects from the presentation layer: the value can never leave
// [Min, Max].
type Slider struct {
	Label  string
	Unit   string
	Min    float64
	Max    float64
	Step   float64
	Coarse float64 // multiplier applied to Step for coarse adjustment
	Value  float64
}

// NewSlider creates a slider with the value clamped into range.
func NewSlider(label, unit string, min, max, step, coarse, value float64) Slider {
	s := Slider{Label: label, Unit: unit, Min: min, Max: max, Step: step, Coarse: coarse, Value: value}
	s.clamp()
	return s
}

// Increase moves the value up by one step, or a coarse step.
func (s *Slider) Increase(coarse bool) {
	s.Value += s.stepSize(coarse)
	s.clamp()
}

// Decrease moves the value down by one step, or a coarse step.
func (s *Slider) Decrease(coarse bool) {
	s.Value -= s.stepSize(coarse)
	s.clamp()
}

// SetRange updates the bounds, keeping the current value inside them. Used
// when the config file is reloaded while running.
func (s *Slider) SetRange(min, max float64) {
	s.Min = min
	s.Max = max
	s.clamp()
}

func (s *Slider) stepSize(coarse bool) float64 {
	if coarse && s.Coarse > 1 {
		return s.Step * s.Coarse
	}
	return s.Step
}

func (s *Slider) clamp() {
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Ratio returns the value's position in range as a number in [0, 1].
func (s Slider) Ratio() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// View renders the slider as a label, track, and value readout.
func (s Slider) View(width int, focused bool, t Theme) string {
	labelStyle := t.Renderer.NewStyle().Foreground(t.Subtext).Width(14)
	valueStyle := t.Renderer.NewStyle().Foreground(t.Text)
	trackColor := t.Muted
	if focused {
		labelStyle = labelStyle.Foreground(t.Primary).Bold(true)
		valueStyle = valueStyle.Bold(true)
		trackColor = t.Primary
	}

	readout := fmt.Sprintf("%.0f %s", s.Value, s.Unit)
	trackWidth := width - 14 - len(readout) - 4
	if trackWidth < 10 {
		trackWidth = 10
	}

	knobPos := int(s.Ratio() * float64(trackWidth-1))
	var track strings.Builder
	for i := 0; i < trackWidth; i++ {
		if i == knobPos {
			track.WriteString("●")
		} else if i < knobPos {
			track.WriteString("━")
		} else {
			track.WriteString("─")
		}
	}

	cursor := "  "
	if focused {
		cursor = "▸ "
	}
	return cursor + labelStyle.Render(s.Label) +
		t.Renderer.NewStyle().Foreground(trackColor).Render(track.String()) +
		" " + valueStyle.Render(readout)
}
