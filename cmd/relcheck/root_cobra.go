package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/relcheck/relcheck-cli/internal/config"
	"github.com/relcheck/relcheck-cli/internal/exitcodes"
)

// Version information - set via -ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// rootCmd wires the CLI surface using Cobra. The root command itself
// performs the release check; version and completion are the only
// subcommands.
var rootCmd = &cobra.Command{
	Use:           "relcheck [--json] <repo-url> <local-version>",
	Short:         "Check a GitHub repository for a newer release",
	Long:          "Compare a local version against the latest GitHub release of a repository.",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0], args[1])
	},
}

var (
	flagJSON    bool
	flagTimeout time.Duration
	flagOutput  string
)

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the check result as JSON")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout for the release fetch (default 30s)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format: json|yaml|text")
}

// Execute runs the CLI and exits with the code mapped from the
// returned error. A nil error from the check path means no update.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var se silentErr
		if !errors.As(err, &se) {
			fmt.Fprintln(os.Stderr, err)
		}
		exitcodes.Exit(exitcodes.CodeForError(err))
	}
}

// loadCfg reads defaults + env via internal/config.Load() and then
// applies overrides from flags.
func loadCfg() config.Config {
	cfg := config.Load()
	if flagTimeout > 0 {
		cfg.HTTPTimeout = flagTimeout
	}
	return cfg
}
