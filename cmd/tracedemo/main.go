// Command tracedemo runs small programs that fail on purpose and prints the
// return trace each failure collected on its way up.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xgx-io/xgx-trace/internal/config"
	"github.com/xgx-io/xgx-trace/internal/logger"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	stdout   io.Writer
	stderr   io.Writer
	exitCode int
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	return a.execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	// cobra skips post-run hooks after a RunE error.
	a.closeLog()
	if err != nil {
		return 2
	}
	return a.exitCode
}

func (a *app) closeLog() {
	if a.log == nil {
		return
	}
	if err := logger.Close(a.log); err != nil {
		_, _ = fmt.Fprintf(a.stderr, "close log: %v\n", err)
	}
	a.log = nil
}

func newRootCmd(a *app) *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "tracedemo",
		Short:         "Demonstrate return traces collected by explicit propagation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				v, _ := flags.GetString("log-level")
				cfg.Log.Level = strings.ToLower(v)
			}
			if flags.Changed("log-file") {
				cfg.Log.File, _ = flags.GetString("log-file")
			}
			if flags.Changed("color") {
				v, _ := flags.GetString("color")
				cfg.Color = strings.ToLower(v)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			a.cfg = cfg
			a.log = logger.New(logger.Options{
				Env:     cfg.Env,
				Level:   cfg.Log.Level,
				File:    cfg.Log.File,
				NoColor: !colorEnabled(cfg.Color, a.stderr),
				Out:     a.stderr,
			})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to read before the environment")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")
	pf.String("log-file", "", "also write JSON logs to this file")
	pf.String("color", "auto", "colorize output (auto|always|never)")

	root.AddCommand(newRunCmd(a), newScenarioCmd(a), newListCmd(a))
	return root
}

var errUnknownScenario = errors.New("unknown scenario")
