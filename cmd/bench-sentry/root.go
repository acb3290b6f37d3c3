package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set via -ldflags at release time.
	Version = "dev"

	verbose bool
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "bench-sentry",
	Short: "Benchmark pull requests against their target branch in CI",
	Long: `bench-sentry runs a repository's benchmark suite for a pull request,
checks the working tree out to the target branch, reruns the suite, and
prints a performance comparison to the build log.

It reads the build context from the CI environment (Travis variables or
GitHub Actions), writes one artifact per run under the benches directory,
and fails fast: the first failing step aborts the rest with its exit code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default .bench-sentry.yaml in the working directory)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
