package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Hiestaa/complex-vis/pkg/field"
	"github.com/Hiestaa/complex-vis/pkg/flags"
	"github.com/Hiestaa/complex-vis/pkg/viewport"
)

const (
	Columns = 80
	Rows    = 24
	Span    = 4.0
	Nudge   = 0.05
)

type options struct {
	markers *flags.Markers

	cols, rows int
	span       float64
	nudge      float64

	budget   time.Duration
	interval time.Duration
}

func mainCmd() *cobra.Command {
	opts := &options{markers: flags.DefaultMarkers()}

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Explore the field in the terminal",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	fs := cmd.Flags()
	opts.markers.AddFlags(fs)
	fs.IntVar(&opts.cols, "cols", Columns, "field width in terminal cells")
	fs.IntVar(&opts.rows, "rows", Rows, "field height in terminal cells")
	fs.Float64Var(&opts.span, "span", Span, "plane units covered by the shorter side")
	fs.Float64Var(&opts.nudge, "nudge", Nudge, "plane units a marker moves per key press")
	fs.DurationVar(&opts.budget, "budget", field.DefaultBudget/2, "time budget of each tick")
	fs.DurationVar(&opts.interval, "interval", field.DefaultInterval, "time between ticks")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	m, err := newModel(opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen()).Run()
	return err
}

func newModel(opts *options) (model, error) {
	markers, err := opts.markers.Build()
	if err != nil {
		return model{}, fmt.Errorf("markers: %w", err)
	}

	// Each cell shows two pixels stacked with a half block, so the field is twice as
	// tall in pixels as in rows.
	vp, err := viewport.Fit(opts.cols, 2*opts.rows, opts.span)
	if err != nil {
		return model{}, fmt.Errorf("viewport: %w", err)
	}

	buf, err := field.NewBuffer(vp.Width, vp.Height)
	if err != nil {
		return model{}, err
	}

	cfg := field.DefaultConfig()
	cfg.Budget = opts.budget

	s, err := field.NewScheduler(buf, vp, markers, cfg)
	if err != nil {
		return model{}, fmt.Errorf("scheduler: %w", err)
	}

	return model{
		sched:    s,
		vp:       vp,
		nudge:    opts.nudge,
		interval: opts.interval,
	}, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
