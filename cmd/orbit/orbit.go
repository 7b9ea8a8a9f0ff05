package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hiestaa/complex-vis/pkg/escape"
	"github.com/Hiestaa/complex-vis/pkg/flags"
)

const MaxIterations = 50

func mainCmd() *cobra.Command {
	markers := flags.DefaultMarkers()
	maxIter := MaxIterations

	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "Print the orbit of the markers and how it is classified",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			m, err := markers.Build()
			if err != nil {
				return fmt.Errorf("markers: %w", err)
			}

			c := escape.NewClassifier(escape.DefaultPalette())
			z0, step := m.Current()

			out := cmd.OutOrStdout()
			for i, z := range c.Trace(z0, step, maxIter) {
				fmt.Fprintf(out, "%4d  %+.6f %+.6fi\n", i, real(z), imag(z))
			}

			r := c.ClassifyWith(z0, step, maxIter)
			col := c.Color(r)
			fmt.Fprintf(out, "%s at iteration %d, color #%02x%02x%02x\n", r.Kind, r.Iteration, col.R, col.G, col.B)

			return nil
		},
	}

	markers.AddFlags(cmd.Flags())
	cmd.Flags().IntVar(&maxIter, "max-iter", MaxIterations, "most steps to trace")

	return cmd
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
