package export

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ryan4559/Bird-Lens-Simulator/pkg/model"
)

// Default canvas size for exported previews.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Options controls where and how big the preview files are written.
type Options struct {
	Dir      string
	BaseName string
	Width    int
	Height   int
}

func (o *Options) applyDefaults() {
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.BaseName == "" {
		o.BaseName = "framing"
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
}

// WriteFiles writes the SVG and PNG previews side by side and returns their
// paths. The two renders are independent and run concurrently.
func WriteFiles(opts Options, in model.SimulationInput, res model.SimulationResult) (svgPath, pngPath string, err error) {
	opts.applyDefaults()
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating export dir: %w", err)
	}

	svgPath = filepath.Join(opts.Dir, opts.BaseName+".svg")
	pngPath = filepath.Join(opts.Dir, opts.BaseName+".png")

	var g errgroup.Group
	g.Go(func() error {
		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return WriteSVG(f, in, res, opts.Width, opts.Height)
	})
	g.Go(func() error {
		f, err := os.Create(pngPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return WritePNG(f, in, res, opts.Width, opts.Height)
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return svgPath, pngPath, nil
}
