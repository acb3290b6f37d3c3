package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/go-github/v68/github"
	"github.com/spf13/cobra"

	benchcli "github.com/RReverser/bench-sentry/internal/bench/adapters/bench_cli"
	benchcmpcli "github.com/RReverser/bench-sentry/internal/bench/adapters/benchcmp_cli"
	deltadiff "github.com/RReverser/bench-sentry/internal/bench/adapters/delta_diff"
	gitcli "github.com/RReverser/bench-sentry/internal/bench/adapters/git_cli"
	prreport "github.com/RReverser/bench-sentry/internal/bench/adapters/pr_report"
	"github.com/RReverser/bench-sentry/internal/bench/app"
	"github.com/RReverser/bench-sentry/internal/bench/domain"
	"github.com/RReverser/bench-sentry/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pull request benchmark sequence",
	Long: `run executes the whole sequence for the current CI build: benchmark
the pull request, check out the target branch, benchmark it, and print the
comparison. Builds that are not pull requests do nothing and exit 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		buildCtx := cfg.Context()
		if err := buildCtx.Validate(); err != nil {
			return err
		}
		// Short-circuit before wiring adapters: a non-PR build must
		// succeed even on an image without git or the benchmark tool.
		if !buildCtx.IsPullRequest() {
			slog.Info("not a pull request build, skipping benchmarks")
			return nil
		}

		runner, err := newRunner(cfg)
		if err != nil {
			return err
		}
		return runner.Run(cmd.Context())
	},
}

func newRunner(cfg *config.Config) (*app.Runner, error) {
	bench, err := benchcli.New(cfg.BenchCommand)
	if err != nil {
		return nil, err
	}
	source, err := gitcli.New(cfg.Remote, "")
	if err != nil {
		return nil, err
	}

	runner := &app.Runner{
		Context:    cfg.Context(),
		BenchesDir: cfg.BenchesDir,
		Bench:      bench,
		Source:     source,
		Comparer:   benchcmpcli.New(cfg.CompareTool),
		Fallback:   deltadiff.New(),
	}

	if cfg.GitHub.Enabled() {
		reporter, err := newReporter(cfg)
		if err != nil {
			return nil, err
		}
		runner.Reporter = reporter
	}
	return runner, nil
}

func newReporter(cfg *config.Config) (*prreport.Adapter, error) {
	prNumber, err := strconv.Atoi(cfg.PullRequest)
	if err != nil {
		return nil, fmt.Errorf("reporting requires a numeric PR identifier: %w", err)
	}

	var client *github.Client
	if cfg.GitHub.Token != "" {
		client = prreport.NewTokenClient(cfg.GitHub.Token)
	} else {
		client, err = prreport.NewAppClient(cfg.GitHub.AppID, cfg.GitHub.InstallationID, cfg.GitHub.PrivateKeyPath)
		if err != nil {
			return nil, err
		}
	}

	return prreport.New(
		client,
		cfg.GitHub.Owner,
		cfg.GitHub.Repo,
		prNumber,
		domain.BranchArtifactName(cfg.Branch),
		domain.PRArtifactName(cfg.PullRequest),
	), nil
}
