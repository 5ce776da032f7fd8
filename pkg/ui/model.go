package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/catalog"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/config"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/export"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/optics"
)

// focusArea identifies which control receives adjustment keys.
type focusArea int

const (
	focusFocal focusArea = iota
	focusDistance
	focusSubject
	focusSensor
	focusCrop
	focusCount
)

// ConfigReloadedMsg carries a freshly loaded config into the running UI.
// The watcher sends it through Program.Send when the file changes on disk.
type ConfigReloadedMsg struct {
	Config config.Config
}

// Model is the root bubbletea model: five input controls on top, the live
// results and framing preview below. All calculation goes through the
// optics package; this model only holds selection state.
type Model struct {
	cfg   config.Config
	theme Theme

	focal    Slider
	distance Slider
	subject  ChoiceRow
	sensor   ChoiceRow
	crop     ChoiceRow

	subjects []model.SubjectProfile
	sensors  []model.SensorFormat
	crops    []model.DigitalCropOption

	focus     focusArea
	editing   bool
	editInput textinput.Model

	width  int
	height int

	input   model.SimulationInput
	result  model.SimulationResult
	calcErr error

	bandNear float64
	bandFar  float64
	hasBand  bool

	help   HelpOverlayModel
	guide  GuideModel
	status string
}

// NewModel builds the root model from a config and the fixed catalogs.
func NewModel(cfg config.Config) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())

	subjects := catalog.Subjects()
	sensors := catalog.SensorFormats()
	crops := catalog.DigitalCrops()

	subjectNames := make([]string, len(subjects))
	for i, s := range subjects {
		subjectNames[i] = s.DisplayName
	}
	sensorNames := make([]string, len(sensors))
	for i, f := range sensors {
		sensorNames[i] = f.DisplayName
	}
	cropNames := make([]string, len(crops))
	for i, c := range crops {
		cropNames[i] = c.Label
	}

	m := Model{
		cfg:      cfg,
		theme:    theme,
		focal:    NewSlider("Focal length", "mm", cfg.FocalRange.Min, cfg.FocalRange.Max, cfg.FocalStep, cfg.CoarseFactor, 400),
		distance: NewSlider("Distance", "m", cfg.DistanceRange.Min, cfg.DistanceRange.Max, cfg.DistanceStep, cfg.CoarseFactor, 20),
		subject:  NewChoiceRow("Subject", subjectNames),
		sensor:   NewChoiceRow("Sensor", sensorNames),
		crop:     NewChoiceRow("Digital crop", cropNames),
		subjects: subjects,
		sensors:  sensors,
		crops:    crops,
		help:     NewHelpOverlayModel(theme),
		guide:    NewGuideModel(theme),
		width:    100,
		height:   30,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Input returns the current simulation input.
func (m Model) Input() model.SimulationInput {
	return m.input
}

// Result returns the current simulation result.
func (m Model) Result() model.SimulationResult {
	return m.result
}

// recompute rebuilds the simulation input from the controls and runs the
// engine. The controls structurally prevent out-of-domain values, so a
// calculation error here means a bug; it is surfaced, not swallowed.
func (m *Model) recompute() {
	m.input = model.SimulationInput{
		FocalLengthMillimeters: m.focal.Value,
		DistanceMeters:         m.distance.Value,
		Sensor:                 m.sensors[m.sensor.Index],
		DigitalCropFactor:      m.crops[m.crop.Index].Factor,
		Subject:                m.subjects[m.subject.Index],
	}

	m.result, m.calcErr = optics.Compute(m.input)
	if m.calcErr != nil {
		m.hasBand = false
		return
	}

	points, err := optics.DistanceSweep(m.input, m.cfg.DistanceRange.Min, m.cfg.DistanceRange.Max, m.cfg.SweepSteps)
	if err != nil {
		m.hasBand = false
		return
	}
	m.bandNear, m.bandFar, m.hasBand = optics.OptimalDistanceBand(points)
}

// applyConfig adopts reloaded settings, keeping current values clamped into
// the new ranges.
func (m *Model) applyConfig(cfg config.Config) {
	m.cfg = cfg
	m.focal.SetRange(cfg.FocalRange.Min, cfg.FocalRange.Max)
	m.focal.Step = cfg.FocalStep
	m.focal.Coarse = cfg.CoarseFactor
	m.distance.SetRange(cfg.DistanceRange.Min, cfg.DistanceRange.Max)
	m.distance.Step = cfg.DistanceStep
	m.distance.Coarse = cfg.CoarseFactor
	m.recompute()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		m.guide.SetSize(msg.Width, msg.Height)
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		m.status = "config reloaded"
		return m, nil

	case tea.KeyMsg:
		if m.guide.IsVisible() {
			m.guide.Hide()
			return m, nil
		}
		if m.help.IsVisible() {
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return m, cmd
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

// updateEditing handles keys while a slider value is typed directly.
func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := strings.TrimSpace(m.editInput.Value())
		if v, err := strconv.ParseFloat(raw, 64); err != nil {
			m.status = fmt.Sprintf("not a number: %q", raw)
		} else if s := m.focusedSlider(); s != nil {
			s.Value = v
			s.clamp()
			m.recompute()
			m.status = ""
		}
		m.editing = false
		return m, nil
	case "esc":
		m.editing = false
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

// updateNormal handles keys in navigation mode.
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "j", "down":
		m.focus = (m.focus + 1) % focusCount
	case "shift+tab", "k", "up":
		m.focus = (m.focus - 1 + focusCount) % focusCount

	case "left", "h":
		m.adjust(-1, false)
	case "right", "l":
		m.adjust(+1, false)
	case "H":
		m.adjust(-1, true)
	case "L":
		m.adjust(+1, true)

	case "i", "enter":
		if s := m.focusedSlider(); s != nil {
			ti := textinput.New()
			ti.Placeholder = s.Label
			ti.SetValue(strconv.FormatFloat(s.Value, 'f', -1, 64))
			ti.CharLimit = 8
			ti.Width = 10
			ti.Focus()
			m.editInput = ti
			m.editing = true
		}

	case "y":
		if m.calcErr == nil {
			if err := clipboard.WriteAll(Summary(m.input, m.result)); err != nil {
				m.status = fmt.Sprintf("clipboard: %v", err)
			} else {
				m.status = "summary copied to clipboard"
			}
		}

	case "e":
		if m.calcErr == nil {
			base := fmt.Sprintf("birdlens-%s-%.0fmm-%.0fm", m.input.Subject.ID, m.focal.Value, m.distance.Value)
			svgPath, pngPath, err := export.WriteFiles(
				export.Options{Dir: m.cfg.ExportDir, BaseName: base}, m.input, m.result)
			if err != nil {
				m.status = fmt.Sprintf("export: %v", err)
			} else {
				m.status = fmt.Sprintf("wrote %s and %s", svgPath, pngPath)
			}
		}

	case "g":
		m.guide.Toggle()
	case "?":
		m.help.Toggle()
	}
	return m, nil
}

// focusedSlider returns the slider under focus, or nil when a choice row
// has it.
func (m *Model) focusedSlider() *Slider {
	switch m.focus {
	case focusFocal:
		return &m.focal
	case focusDistance:
		return &m.distance
	}
	return nil
}

// adjust applies a left/right adjustment to the focused control.
func (m *Model) adjust(direction int, coarse bool) {
	switch m.focus {
	case focusFocal, focusDistance:
		s := m.focusedSlider()
		if direction < 0 {
			s.Decrease(coarse)
		} else {
			s.Increase(coarse)
		}
	case focusSubject:
		if direction < 0 {
			m.subject.Prev()
		} else {
			m.subject.Next()
		}
	case focusSensor:
		if direction < 0 {
			m.sensor.Prev()
		} else {
			m.sensor.Next()
		}
	case focusCrop:
		if direction < 0 {
			m.crop.Prev()
		} else {
			m.crop.Next()
		}
	}
	m.recompute()
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.theme

	if m.guide.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.guide.View())
	}
	if m.help.IsVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	contentWidth := m.width - 4
	if contentWidth > 100 {
		contentWidth = 100
	}
	if contentWidth < 60 {
		contentWidth = 60
	}

	titleStyle := t.Renderer.NewStyle().Bold(true).Foreground(t.Primary)
	header := titleStyle.Render("BIRD LENS SIMULATOR") +
		t.Renderer.NewStyle().Foreground(t.Muted).Render("  will it fill the frame?")

	controls := strings.Join([]string{
		m.focal.View(contentWidth, m.focus == focusFocal, t),
		m.distance.View(contentWidth, m.focus == focusDistance, t),
		m.subject.View(m.focus == focusSubject, t),
		m.sensor.View(m.focus == focusSensor, t),
		m.crop.View(m.focus == focusCrop, t),
	}, "\n")

	if m.editing {
		controls += "\n  " + t.Renderer.NewStyle().Foreground(t.Primary).Render("type value: ") + m.editInput.View()
	}

	var body string
	if m.calcErr != nil {
		body = t.Renderer.NewStyle().Foreground(t.Danger).Render("calculation error: " + m.calcErr.Error())
	} else {
		previewWidth := 40
		results := RenderResults(m.result, m.bandNear, m.bandFar, m.hasBand, contentWidth-previewWidth-2, t)
		preview := RenderFramePreview(m.input.Subject, m.result.FrameFillPercentage, previewWidth, t)
		body = lipgloss.JoinHorizontal(lipgloss.Top, results, "  ", preview)
	}

	statusStyle := t.Renderer.NewStyle().Foreground(t.Success)
	if strings.Contains(m.status, "error") || strings.HasPrefix(m.status, "export:") || strings.HasPrefix(m.status, "clipboard:") {
		statusStyle = t.Renderer.NewStyle().Foreground(t.Danger)
	}
	status := statusStyle.Render(m.status)

	footer := t.Renderer.NewStyle().Foreground(t.Muted).
		Render("tab/j/k move · h/l adjust · H/L coarse · i type value · y copy · e export · g guide · ? help · q quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		controls,
		RenderDivider(contentWidth, t),
		body,
		"",
		status,
		footer,
	)

	boxStyle := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}
