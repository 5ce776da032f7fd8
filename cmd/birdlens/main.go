package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/catalog"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/config"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/export"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/optics"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/ui"
	"github.com/ryan4559/Bird-Lens-Simulator/pkg/watcher"
)

const appVersion = "0.1.0"

func main() {
	help := flag.Bool("help", false, "Show help")
	version := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", "", "Config file path (default: birdlens.yaml lookup)")
	subjectQuery := flag.String("subject", "sparrow", "Subject, by id or fuzzy name")
	sensorID := flag.String("sensor", "full-frame", "Sensor format id (full-frame, aps-c)")
	cropFactor := flag.Float64("crop", 1.0, "Digital crop factor (1.0, 1.4, 2.0)")
	focal := flag.Float64("focal", 0, "Focal length in mm; runs a one-shot calculation")
	distance := flag.Float64("distance", 0, "Distance in m (one-shot mode)")
	quick := flag.Bool("quick", false, "Guided form instead of the full TUI")
	sweep := flag.Bool("sweep", false, "Print a distance sweep table (one-shot mode)")
	doExport := flag.Bool("export", false, "Write SVG and PNG previews (one-shot mode)")
	outDir := flag.String("out", "", "Export directory (default from config)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: birdlens [options]")
		fmt.Println("\nAn optical-framing calculator for wildlife photography.")
		fmt.Println("Run without options for the interactive TUI.")
		flag.PrintDefaults()
		os.Exit(0)
	}
	if *version {
		fmt.Println("birdlens version " + appVersion)
		os.Exit(0)
	}

	if err := catalog.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "catalog data is broken: %v\n", err)
		os.Exit(1)
	}

	cfg, cfgPath := loadConfig(*configPath)
	if *outDir != "" {
		cfg.ExportDir = *outDir
	}

	if *quick {
		in, err := runQuickForm(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "form: %v\n", err)
			os.Exit(1)
		}
		runOneShot(cfg, in, *sweep, *doExport)
		return
	}

	oneShot := *sweep || *doExport
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "focal", "distance", "subject", "sensor", "crop":
			oneShot = true
		}
	})
	if oneShot {
		in, err := resolveInput(cfg, *subjectQuery, *sensorID, *cropFactor, *focal, *distance)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		runOneShot(cfg, in, *sweep, *doExport)
		return
	}

	runTUI(cfg, cfgPath)
}

// loadConfig resolves the effective config. An explicit -config path that
// fails to load is fatal; a broken discovered file falls back to defaults
// with a warning.
func loadConfig(explicit string) (config.Config, string) {
	if explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return cfg, explicit
	}
	path, ok := config.Locate()
	if !ok {
		return config.Default(), ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		return config.Default(), path
	}
	return cfg, path
}

// resolveInput turns CLI arguments into a simulation input, filling unset
// numeric values with sensible midrange defaults.
func resolveInput(cfg config.Config, subjectQuery, sensorID string, crop, focal, distance float64) (model.SimulationInput, error) {
	subject, ok := catalog.MatchSubject(subjectQuery)
	if !ok {
		return model.SimulationInput{}, fmt.Errorf("no subject matches %q (try: %s)", subjectQuery, catalogSubjectIDs())
	}
	sensor, ok := catalog.SensorFormatByID(sensorID)
	if !ok {
		return model.SimulationInput{}, fmt.Errorf("unknown sensor %q (try: full-frame, aps-c)", sensorID)
	}
	cropOpt, ok := catalog.DigitalCropByFactor(crop)
	if !ok {
		return model.SimulationInput{}, fmt.Errorf("digital crop %v is not a catalog step (1.0, 1.4, 2.0)", crop)
	}
	if focal == 0 {
		focal = 400
	}
	if distance == 0 {
		distance = 20
	}
	if focal < cfg.FocalRange.Min || focal > cfg.FocalRange.Max {
		return model.SimulationInput{}, fmt.Errorf("focal length %vmm outside [%v, %v]", focal, cfg.FocalRange.Min, cfg.FocalRange.Max)
	}
	if distance < cfg.DistanceRange.Min || distance > cfg.DistanceRange.Max {
		return model.SimulationInput{}, fmt.Errorf("distance %vm outside [%v, %v]", distance, cfg.DistanceRange.Min, cfg.DistanceRange.Max)
	}
	return model.SimulationInput{
		FocalLengthMillimeters: focal,
		DistanceMeters:         distance,
		Sensor:                 sensor,
		DigitalCropFactor:      cropOpt.Factor,
		Subject:                subject,
	}, nil
}

func catalogSubjectIDs() string {
	var ids []string
	for _, s := range catalog.Subjects() {
		ids = append(ids, s.ID)
	}
	return strings.Join(ids, ", ")
}

// runOneShot computes a single result and prints it, optionally with the
// distance sweep table and exported preview files.
func runOneShot(cfg config.Config, in model.SimulationInput, sweep, doExport bool) {
	res, err := optics.Compute(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#BD93F9"))
		fmt.Println(style.Render("BIRD LENS SIMULATOR"))
	}
	fmt.Print(ui.Summary(in, res))

	if sweep {
		printSweep(cfg, in)
	}
	if doExport {
		base := fmt.Sprintf("birdlens-%s-%.0fmm-%.0fm", in.Subject.ID, in.FocalLengthMillimeters, in.DistanceMeters)
		svgPath, pngPath, err := export.WriteFiles(export.Options{Dir: cfg.ExportDir, BaseName: base}, in, res)
		if err != nil {
			fmt.Fprintf(os.Stderr, "export: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s and %s\n", svgPath, pngPath)
	}
}

func printSweep(cfg config.Config, in model.SimulationInput) {
	points, err := optics.DistanceSweep(in, cfg.DistanceRange.Min, cfg.DistanceRange.Max, cfg.SweepSteps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweep: %v\n", err)
		return
	}

	fmt.Printf("\n%8s  %10s  %8s  %s\n", "dist (m)", "fill", "magnif.", "composition")
	for _, p := range points {
		fmt.Printf("%8.1f  %10s  %7.1fx  %s\n",
			p.DistanceMeters, ui.FormatFill(p.Result.FrameFillPercentage),
			p.Result.BinocularMagnification, p.Tier)
	}
	if near, far, ok := optics.OptimalDistanceBand(points); ok {
		fmt.Printf("\noptimal band: %.1f-%.1f m\n", near, far)
	} else {
		fmt.Println("\nno optimal band in range")
	}
}

// runQuickForm collects the five inputs through a short form.
func runQuickForm(cfg config.Config) (model.SimulationInput, error) {
	var (
		subjectID  string
		sensorID   string
		cropChoice float64
		focalStr   = "400"
		distStr    = "20"
	)

	subjectOpts := make([]huh.Option[string], 0, 3)
	for _, s := range catalog.Subjects() {
		subjectOpts = append(subjectOpts,
			huh.NewOption(fmt.Sprintf("%s (%.0f cm)", s.DisplayName, s.HeightCentimeters), s.ID))
	}
	sensorOpts := make([]huh.Option[string], 0, 2)
	for _, f := range catalog.SensorFormats() {
		sensorOpts = append(sensorOpts,
			huh.NewOption(fmt.Sprintf("%s (%.1fx)", f.DisplayName, f.CropFactor), f.ID))
	}
	cropOpts := make([]huh.Option[float64], 0, 3)
	for _, c := range catalog.DigitalCrops() {
		cropOpts = append(cropOpts, huh.NewOption(c.Label, c.Factor))
	}

	numberIn := func(name string, r config.Range) func(string) error {
		return func(s string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", name)
			}
			if v < r.Min || v > r.Max {
				return fmt.Errorf("%s must be in [%v, %v]", name, r.Min, r.Max)
			}
			return nil
		}
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title("Subject").Options(subjectOpts...).Value(&subjectID),
		huh.NewSelect[string]().Title("Sensor format").Options(sensorOpts...).Value(&sensorID),
		huh.NewSelect[float64]().Title("Digital crop").Options(cropOpts...).Value(&cropChoice),
		huh.NewInput().Title("Focal length (mm)").Value(&focalStr).Validate(numberIn("focal length", cfg.FocalRange)),
		huh.NewInput().Title("Distance (m)").Value(&distStr).Validate(numberIn("distance", cfg.DistanceRange)),
	))
	if err := form.Run(); err != nil {
		return model.SimulationInput{}, err
	}

	focal, _ := strconv.ParseFloat(strings.TrimSpace(focalStr), 64)
	distance, _ := strconv.ParseFloat(strings.TrimSpace(distStr), 64)
	return resolveInput(cfg, subjectID, sensorID, cropChoice, focal, distance)
}

func runTUI(cfg config.Config, cfgPath string) {
	m := ui.NewModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Live-reload the config while the TUI runs. Losing the watcher is
	// not fatal; the app just needs a restart to pick up edits.
	if cfgPath != "" {
		w, err := watcher.Watch(cfgPath, func() {
			if newCfg, err := config.Load(cfgPath); err == nil {
				p.Send(ui.ConfigReloadedMsg{Config: newCfg})
			}
		})
		if err == nil {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running birdlens: %v\n", err)
		os.Exit(1)
	}
}
