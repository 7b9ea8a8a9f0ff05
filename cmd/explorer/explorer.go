package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Hiestaa/complex-vis/pkg/field"
	"github.com/Hiestaa/complex-vis/pkg/flags"
	"github.com/Hiestaa/complex-vis/pkg/viewport"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	Span         = 4.0

	TraceIterations = 20
	StepRadius      = 3.0
	LineWidth       = 1.0
)

type options struct {
	markers *flags.Markers

	width, height int
	span          float64

	budget   time.Duration
	interval time.Duration

	traceIter  int
	stepRadius float64
	lineWidth  float64
}

func mainCmd() *cobra.Command {
	opts := &options{markers: flags.DefaultMarkers()}

	cmd := &cobra.Command{
		Use:   "explorer",
		Short: "Drag markers A and B and watch the field recompute",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	opts.markers.AddFlags(fs)
	fs.IntVar(&opts.width, "width", ScreenWidth, "window width in pixels")
	fs.IntVar(&opts.height, "height", ScreenHeight, "window height in pixels")
	fs.Float64Var(&opts.span, "span", Span, "plane units covered by the shorter side")
	fs.DurationVar(&opts.budget, "budget", field.DefaultBudget/2, "time budget of each tick")
	fs.DurationVar(&opts.interval, "interval", field.DefaultInterval, "time between ticks")
	fs.IntVar(&opts.traceIter, "trace-iter", TraceIterations, "orbit steps drawn between the markers")
	fs.Float64Var(&opts.stepRadius, "step-radius", StepRadius, "radius of each drawn orbit step")
	fs.Float64Var(&opts.lineWidth, "line-width", LineWidth, "width of the orbit polyline")

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

	s, err := field.NewScheduler(buf, vp, markers, cfg)
	if err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	g := NewGame(s, vp, Settings{
		TraceIter:  opts.traceIter,
		StepRadius: opts.stepRadius,
		LineWidth:  opts.lineWidth,
	})

	if opts.interval > 0 {
		ebiten.SetTPS(int(time.Second / opts.interval))
	}
	ebiten.SetWindowSize(opts.width, opts.height)
	ebiten.SetWindowTitle("complex-vis")

	return ebiten.RunGame(g)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
