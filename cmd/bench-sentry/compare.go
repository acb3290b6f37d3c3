package main

import (
	"fmt"

	"github.com/spf13/cobra"

	benchcmpcli "github.com/RReverser/bench-sentry/internal/bench/adapters/benchcmp_cli"
	deltadiff "github.com/RReverser/bench-sentry/internal/bench/adapters/delta_diff"
	"github.com/RReverser/bench-sentry/internal/bench/domain"
	"github.com/RReverser/bench-sentry/internal/config"
)

var compareDir string

var compareCmd = &cobra.Command{
	Use:   "compare <baseline> <candidate>",
	Short: "Compare two existing benchmark artifacts",
	Long: `compare runs the configured comparison tool over two artifacts that
already exist, baseline first, without rerunning any benchmarks. When the
tool is not installed the built-in comparison runs instead.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		dir := compareDir
		if dir == "" {
			dir = cfg.BenchesDir
		}

		comparison, err := benchcmpcli.New(cfg.CompareTool).Compare(cmd.Context(), dir, args[0], args[1])
		if domain.IsToolNotFound(err) {
			comparison, err = deltadiff.New().Compare(cmd.Context(), dir, args[0], args[1])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), comparison)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVar(&compareDir, "dir", "", "artifact directory (default: configured benches dir)")
}
