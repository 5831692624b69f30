// Package cmd provides the command-line interface for csim.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

const usageTemplate = `Usage: {{.CommandPath}} [-hv] -s <num> -E <num> -b <num> -t <file>
Options:
  -h         Print this help message.
  -v         Optional verbose flag.
  -s <num>   Number of set index bits.
  -E <num>   Number of lines per set.
  -b <num>   Number of block offset bits.
  -t <file>  Trace file.

Additional options:
      --results-file <path>  Also write "hits misses evictions" to path.
      --record <name>        Record the run and every access in <name>.sqlite3.
      --no-color             Do not color verbose output.
      --per-set              Print the counts of every used set.

Every option except -h and -v can also be given in the environment
(CSIM_S, CSIM_E, CSIM_B, CSIM_TRACE, CSIM_RECORD, CSIM_RESULTS_FILE),
optionally through a .env file in the working directory.
{{if .HasAvailableSubCommands}}
Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}
{{end}}
Examples:
  linux>  {{.CommandPath}} -s 4 -E 1 -b 4 -t traces/yi.trace
  linux>  {{.CommandPath}} -v -s 8 -E 2 -b 4 -t traces/yi.trace
`

// NewRootCmd creates the csim command.
func NewRootCmd() *cobra.Command {
	var cfg config

	rootCmd := &cobra.Command{
		Use:   "csim",
		Short: "Simulate a set-associative LRU cache on a memory trace.",
		Long: "csim replays a valgrind memory trace against a simulated " +
			"set-associative cache with LRU replacement and reports the " +
			"number of hits, misses, and evictions.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd.Flags()); err != nil {
				return err
			}

			if err := cfg.validate(); err != nil {
				return err
			}

			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.IntVarP(&cfg.log2NumSets, "set-bits", "s", 0,
		"Number of set index bits.")
	flags.IntVarP(&cfg.wayAssociativity, "lines", "E", 0,
		"Number of lines per set.")
	flags.IntVarP(&cfg.log2BlockSize, "block-bits", "b", 0,
		"Number of block offset bits.")
	flags.StringVarP(&cfg.tracePath, "trace", "t", "", "Trace file.")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false,
		"Optional verbose flag.")
	flags.StringVar(&cfg.resultsFile, "results-file", "",
		"Also write \"hits misses evictions\" to this file.")
	flags.StringVar(&cfg.record, "record", "",
		"Record the run and every access in <name>.sqlite3.")
	flags.BoolVar(&cfg.noColor, "no-color", false,
		"Do not color verbose output.")
	flags.BoolVar(&cfg.perSet, "per-set", false,
		"Print hit, miss and eviction counts of every used set.")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ConfigurationError{Msg: err.Error()}
	})

	rootCmd.AddCommand(newRunsCmd())

	return rootCmd
}

// Execute runs csim with the process arguments and exits with its status.
func Execute() {
	atexit.Exit(execute(NewRootCmd(), os.Args[1:], os.Stdout, os.Stderr))
}

func execute(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", rootCmd.Name(), err)
		return 1
	}

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(stdout, "%s: %v\n", rootCmd.Name(), err)
		_ = cmd.Usage()

		return 1
	}

	fmt.Fprintf(stderr, "%s: %v\n", rootCmd.Name(), err)

	return 1
}
