package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/mdu/internal/mdu"
)

// ErrIncomplete is returned when results were printed but some paths could not be read.
var ErrIncomplete = errors.New("some paths could not be read")

// CLI represents the command-line interface.
type CLI struct {
	version string
	args    []string
	stdout  io.Writer
	stderr  io.Writer
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{
		version: version,
		args:    os.Args[1:],
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// WithArgs returns a copy of the CLI that parses args instead of os.Args.
func (c CLI) WithArgs(args ...string) CLI {
	c.args = args

	return c
}

// WithOutput returns a copy of the CLI writing results to stdout and diagnostics to stderr.
func (c CLI) WithOutput(stdout, stderr io.Writer) CLI {
	c.stdout = stdout
	c.stderr = stderr

	return c
}

// Execute runs the CLI with the configured arguments.
func (c CLI) Execute() error {
	return c.command().Execute()
}

func (c CLI) command() *cobra.Command {
	var options mdu.Options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "mdu [flags] path...",
		Short: "Estimate disk usage of files and directories in parallel",
		Long: heredoc.Doc(`
			mdu calculates the disk usage of the given files and directories,
			including everything below them, in 512-byte blocks like du.

			Directories are traversed by a pool of workers sharing one queue of
			pending directories. Use -j to choose how many workers take part.

			Symbolic links are never followed. Hard links are counted once per path.

			The exit status is 1 if any path or subpath could not be read;
			totals are still printed for everything that could be measured.
		`),
		Example: heredoc.Doc(`
			mdu /var/log
			mdu -j 8 ~/src /tmp
			mdu -H -o json .
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if len(args) == 0 {
				return errors.New("expected at least one path")
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Workers < 1 {
				return fmt.Errorf("invalid number of jobs %d: %w", options.Workers, mdu.ErrWorkers)
			}

			options.Paths = args
			options.ErrOutput = c.stderr

			return logic(options, c.stdout, c.stderr)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.IntVarP(&options.Workers, "jobs", "j", 1, "Number of worker goroutines")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVarP(&options.Human, "human", "H", false, "Print sizes in human-readable units")
	flags.BoolVar(&options.Verify, "verify", false, "Check totals against an independent reference walk")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	cmd.SetArgs(c.args)
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)

	return cmd
}
