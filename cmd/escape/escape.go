package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	xdraw "golang.org/x/image/draw"

	"github.com/Hiestaa/complex-vis/pkg/field"
	"github.com/Hiestaa/complex-vis/pkg/flags"
	"github.com/Hiestaa/complex-vis/pkg/viewport"
)

const (
	Width  = 800
	Height = 600

	// Span is how many plane units the shorter side of the image covers.
	Span = 4.0
)

type options struct {
	markers *flags.Markers

	width, height int
	span          float64
	maxIter       int

	budget   time.Duration
	batch    int
	interval time.Duration

	scale int
	out   string
}

func mainCmd() *cobra.Command {
	opts := &options{markers: flags.DefaultMarkers()}

	cmd := &cobra.Command{
		Use:   "escape",
		Short: "Render an escape-time field to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	opts.markers.AddFlags(fs)
	fs.IntVar(&opts.width, "width", Width, "field width in pixels")
	fs.IntVar(&opts.height, "height", Height, "field height in pixels")
	fs.Float64Var(&opts.span, "span", Span, "plane units covered by the shorter side")
	fs.IntVar(&opts.maxIter, "max-iter", 0, "iterations per pixel (0 uses the palette length)")
	fs.DurationVar(&opts.budget, "budget", field.DefaultBudget, "time budget of each tick")
	fs.IntVar(&opts.batch, "batch", field.DefaultMaxBatch, "most pixels computed by one tick")
	fs.DurationVar(&opts.interval, "interval", field.DefaultInterval, "time between ticks")
	fs.IntVar(&opts.scale, "scale", 1, "integer upscale applied to the written image")
	fs.StringVar(&opts.out, "out", "out", "output directory")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	markers, err := opts.markers.Build()
	if err != nil {
		return fmt.Errorf("markers: %w", err)
	}

	vp, err := viewport.Fit(opts.width, opts.height, opts.span)
	if err != nil {
		return fmt.Errorf("viewport: %w", err)
	}

	buf, err := field.NewBuffer(opts.width, opts.height)
	if err != nil {
		return err
	}

	cfg := field.DefaultConfig()
	cfg.Budget = opts.budget
	cfg.MaxBatch = opts.batch
	if opts.maxIter > 0 {
		cfg.MaxIter = opts.maxIter
	}

	s, err := field.NewScheduler(buf, vp, markers, cfg)
	if err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	log.Printf("rendering %dx%d field, variable %s, A=%v B=%v", opts.width, opts.height,
		markers.Variable, markers.A, markers.B)

	start := time.Now()
	ticks := 0
	err = field.Run(cmd.Context(), s, opts.interval, func(int) {
		ticks++
		if ticks%100 == 0 {
			log.Printf("%5.1f%% after %d ticks", 100*s.Progress(), ticks)
		}
	})
	if err != nil {
		return err
	}
	log.Printf("field complete: %d ticks in %s", ticks, time.Since(start))

	z0, step := markers.Current()
	r := s.Classifier().ClassifyWith(z0, step, cfg.MaxIter)
	log.Printf("markers' own orbit: %s at iteration %d", r.Kind, r.Iteration)

	return writePNG(buf.Image(), opts.scale, opts.out)
}

func writePNG(img *image.RGBA, scale int, dir string) error {
	var out image.Image = img
	if scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
		out = scaled
	}

	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	name := filepath.Join(dir, fmt.Sprintf("%s.png", time.Now().Format("20060102150405")))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	err = png.Encode(f, out)
	if err != nil {
		return err
	}

	log.Printf("wrote %s", name)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
