package ui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/config"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModelComputesDefaults(t *testing.T) {
	m := NewModel(config.Default())

	// 400mm at 20m on a full-frame sparrow: the canonical reference case.
	res := m.Result()
	if math.Abs(res.EquivalentFocalLengthMillimeters-400) > 1e-9 {
		t.Errorf("equivalent focal = %v, want 400", res.EquivalentFocalLengthMillimeters)
	}
	if math.Abs(res.FrameFillPercentage-3.2/24.0*100) > 1e-9 {
		t.Errorf("fill = %v, want %v", res.FrameFillPercentage, 3.2/24.0*100)
	}
	if math.Abs(res.BinocularMagnification-8) > 1e-9 {
		t.Errorf("magnification = %v, want 8", res.BinocularMagnification)
	}
}

func TestFocusCyclesThroughAllControls(t *testing.T) {
	m := NewModel(config.Default())
	for i := 0; i < int(focusCount); i++ {
		if m.focus != focusArea(i) {
			t.Fatalf("focus = %v after %d tabs, want %v", m.focus, i, focusArea(i))
		}
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
	}
	if m.focus != focusFocal {
		t.Errorf("focus did not wrap back to the first control: %v", m.focus)
	}
}

func TestAdjustingSensorChangesResult(t *testing.T) {
	m := NewModel(config.Default())

	// Move focus to the sensor row and switch to APS-C.
	for m.focus != focusSensor {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
	}
	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)

	res := m.Result()
	if math.Abs(res.EquivalentFocalLengthMillimeters-600) > 1e-9 {
		t.Errorf("equivalent focal on APS-C = %v, want 600", res.EquivalentFocalLengthMillimeters)
	}
	if math.Abs(res.FrameFillPercentage-20) > 1e-9 {
		t.Errorf("fill on APS-C = %v, want 20", res.FrameFillPercentage)
	}
}

func TestSliderAdjustRecomputes(t *testing.T) {
	m := NewModel(config.Default())
	before := m.Result().FrameFillPercentage

	next, _ := m.Update(keyMsg("right")) // focal +10mm
	m = next.(Model)

	after := m.Result().FrameFillPercentage
	if after <= before {
		t.Errorf("fill did not grow with focal length: %v -> %v", before, after)
	}
	if m.Input().FocalLengthMillimeters != 410 {
		t.Errorf("focal after one step = %v, want 410", m.Input().FocalLengthMillimeters)
	}
}

func TestDirectEntryClampsToRange(t *testing.T) {
	m := NewModel(config.Default())

	next, _ := m.Update(keyMsg("i"))
	m = next.(Model)
	if !m.editing {
		t.Fatal("i did not enter edit mode on a slider")
	}
	m.editInput.SetValue("5000")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if m.editing {
		t.Error("enter did not leave edit mode")
	}
	if m.Input().FocalLengthMillimeters != m.cfg.FocalRange.Max {
		t.Errorf("typed value not clamped: %v, want %v", m.Input().FocalLengthMillimeters, m.cfg.FocalRange.Max)
	}
}

func TestConfigReloadedReclampsSliders(t *testing.T) {
	m := NewModel(config.Default())

	cfg := config.Default()
	cfg.FocalRange = config.Range{Min: 100, Max: 300}
	next, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = next.(Model)

	if m.Input().FocalLengthMillimeters != 300 {
		t.Errorf("focal after range shrink = %v, want 300", m.Input().FocalLengthMillimeters)
	}
	if m.focal.Min != 100 || m.focal.Max != 300 {
		t.Errorf("slider range = [%v, %v], want [100, 300]", m.focal.Min, m.focal.Max)
	}
}

func TestOverlayTogglesBlockInput(t *testing.T) {
	m := NewModel(config.Default())

	next, _ := m.Update(keyMsg("?"))
	m = next.(Model)
	if !m.help.IsVisible() {
		t.Fatal("? did not open help")
	}

	before := m.Input()
	next, _ = m.Update(keyMsg("l"))
	m = next.(Model)
	if m.help.IsVisible() {
		t.Error("key press did not close help")
	}
	if m.Input() != before {
		t.Error("key press while help was open adjusted a control")
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(Model)
	if !m.guide.IsVisible() {
		t.Fatal("g did not open the guide")
	}
	next, _ = m.Update(keyMsg("x"))
	m = next.(Model)
	if m.guide.IsVisible() {
		t.Error("key press did not close the guide")
	}
}

func TestSummaryContent(t *testing.T) {
	in := model.SimulationInput{
		FocalLengthMillimeters: 400,
		DistanceMeters:         20,
		Sensor:                 model.SensorFormat{ID: "aps-c", DisplayName: "APS-C", CropFactor: 1.5, SensorHeightMillimeters: 16},
		DigitalCropFactor:      1.4,
		Subject:                model.SubjectProfile{ID: "sparrow", DisplayName: "Eurasian Tree Sparrow", HeightCentimeters: 16},
	}
	res := model.SimulationResult{
		EquivalentFocalLengthMillimeters: 840,
		FrameFillPercentage:              28,
		BinocularMagnification:           16.8,
	}
	out := Summary(in, res)
	for _, want := range []string{
		"Eurasian Tree Sparrow (16 cm) at 20 m",
		"400 mm on APS-C (1.5x), 1.4x digital crop",
		"Equivalent focal length: 840 mm",
		"Frame fill: 28.0%",
		"Magnification: 16.8x",
		"stabilization recommended",
		"habitat context",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatFill(t *testing.T) {
	if got := FormatFill(13.333333); got != "13.3%" {
		t.Errorf("FormatFill(13.33) = %q", got)
	}
	if got := FormatFill(200); !strings.Contains(got, "beyond scale") {
		t.Errorf("FormatFill(200) = %q, want clamp flag", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "heron", 10, "heron"},
		{"exact", "heron", 5, "heron"},
		{"cut", "Eurasian Tree Sparrow", 8, "Eurasia…"},
		{"zero width", "heron", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
