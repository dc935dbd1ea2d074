// Package commands implements the CLI commands for asyncwalk.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/asyncwalk/internal/app"
	"go.trai.ch/asyncwalk/internal/build"
)

// CLI represents the command line interface for asyncwalk.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Walk(ctx context.Context, opts app.WalkOptions) error
	Du(ctx context.Context, opts app.DuOptions) (*app.DuReport, error)
	Digest(ctx context.Context, opts app.CommonOptions) (*app.DigestReport, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "asyncwalk",
		Short:         "Walk directory trees with asynchronous, bounded I/O",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so --version gets no shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.IntP("workers", "w", 0, "Worker pool size (default: one per CPU)")
	pf.StringSlice("ignore", nil, "Skip entries whose name matches this glob (repeatable)")
	pf.StringP("output-mode", "o", "", "Output mode: auto, tui, linear, or json")
	pf.String("log-format", "", "Log format: pretty or json")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("trace-stats", false, "Print per-operation counts and latency when done")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newWalkCmd())
	rootCmd.AddCommand(c.newDuCmd())
	rootCmd.AddCommand(c.newDigestCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// commonOptions reads the persistent flags and the optional root argument.
func commonOptions(cmd *cobra.Command, args []string) app.CommonOptions {
	workers, _ := cmd.Flags().GetInt("workers")
	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	logFormat, _ := cmd.Flags().GetString("log-format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	traceStats, _ := cmd.Flags().GetBool("trace-stats")

	opts := app.CommonOptions{
		Workers:    workers,
		Ignore:     ignore,
		OutputMode: outputMode,
		LogFormat:  logFormat,
		Verbose:    verbose,
		TraceStats: traceStats,
	}
	if len(args) > 0 {
		opts.Root = args[0]
	}
	return opts
}
