package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-trace/internal/demo"
	"github.com/xgx-io/xgx-trace/tracelog"
)

func newRunCmd(a *app) *cobra.Command {
	var x int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the original call graph with input x",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, _ := demo.Lookup("original")
			a.runScenario(cmd, s, x)
			return nil
		},
	}
	cmd.Flags().IntVar(&x, "x", 12, "input to the call graph; >= 5 takes the fallback path")
	return cmd
}

func newScenarioCmd(a *app) *cobra.Command {
	var x int
	cmd := &cobra.Command{
		Use:   "scenario NAME",
		Short: "Run a named scenario (see list)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := demo.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownScenario, args[0])
			}
			a.runScenario(cmd, s, x)
			return nil
		},
	}
	cmd.Flags().IntVar(&x, "x", 12, "input passed to the scenario")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, s := range demo.Scenarios() {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
			}
			return tw.Flush()
		},
	}
}

// runScenario executes s, logs and renders a failure, and records the exit
// code for execute.
func (a *app) runScenario(cmd *cobra.Command, s demo.Scenario, x int) {
	ctx := cmd.Context()
	a.log.Debug("running scenario", slog.String("scenario", s.Name), slog.Int("x", x))

	r := s.Run(x)
	a.exitCode = tracelog.Report(ctx, a.log.With(slog.String("scenario", s.Name)), r)

	_, traced := r.Split()
	if traced == nil {
		_, _ = fmt.Fprintf(a.stdout, "%s: ok\n", s.Name)
		return
	}
	newRenderer(a.stderr, a.cfg.Color).failure(traced.Err().Kind(), traced)
}
