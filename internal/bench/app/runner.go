// Package app wires the benchmark, source control, comparison, and
// reporting ports into the pull request benchmark sequence.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
	"github.com/RReverser/bench-sentry/internal/bench/ports"
)

// Runner executes the whole sequence for one CI build: benchmark the PR,
// switch to the target branch, benchmark again, compare, optionally
// report. Every step is fail-fast; the first error aborts the rest and no
// completed step is rolled back.
type Runner struct {
	Context    domain.BuildContext
	BenchesDir string

	Bench  ports.BenchRunner
	Source ports.SourceControl
	// Comparer is the preferred comparer, normally the external tool.
	Comparer ports.Comparer
	// Fallback runs instead of Comparer when the external tool is not
	// installed. Nil disables the fallback.
	Fallback ports.Comparer
	// Reporter is optional; nil skips publication.
	Reporter ports.Reporter

	// Out receives the comparison text. Defaults to os.Stdout.
	Out io.Writer
	Log *slog.Logger
}

// Run executes the sequence. Non-PR builds return nil without touching the
// filesystem or the working tree.
func (r *Runner) Run(ctx context.Context) error {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	if err := r.Context.Validate(); err != nil {
		return err
	}
	if !r.Context.IsPullRequest() {
		log.Info("not a pull request build, skipping benchmarks")
		return nil
	}

	pr := r.Context.PullRequest
	branch := r.Context.Branch
	prArtifact := domain.PRArtifactName(pr)
	branchArtifact := domain.BranchArtifactName(branch)
	runID := uuid.NewString()

	log.Info("running benchmarks for pull request", "run", runID, "pr", pr)
	if err := r.Bench.Run(ctx, filepath.Join(r.BenchesDir, prArtifact)); err != nil {
		return fmt.Errorf("benchmarking pull request: %w", err)
	}

	log.Info("checking out target branch", "branch", branch)
	if err := r.Source.RestrictRemote(ctx, branch); err != nil {
		return fmt.Errorf("restricting remote fetch: %w", err)
	}
	if err := r.Source.Fetch(ctx, branch); err != nil {
		return fmt.Errorf("fetching target branch: %w", err)
	}
	if err := r.Source.Checkout(ctx, branch); err != nil {
		return fmt.Errorf("checking out target branch: %w", err)
	}

	log.Info("running benchmarks for target branch", "branch", branch)
	if err := r.Bench.Run(ctx, filepath.Join(r.BenchesDir, branchArtifact)); err != nil {
		return fmt.Errorf("benchmarking target branch: %w", err)
	}

	log.Info("performance comparison follows", "baseline", branchArtifact, "candidate", prArtifact)
	comparison, err := r.compare(ctx, log, branchArtifact, prArtifact)
	if err != nil {
		return fmt.Errorf("comparing benchmarks: %w", err)
	}
	fmt.Fprintln(out, comparison)

	if r.Reporter != nil {
		if err := r.Reporter.Publish(ctx, comparison); err != nil {
			return fmt.Errorf("publishing comparison: %w", err)
		}
	}
	return nil
}

// compare prefers the external tool and falls back to the built-in
// comparer only when the tool is absent. A tool that exists but fails
// propagates its error unchanged.
func (r *Runner) compare(ctx context.Context, log *slog.Logger, baseline, candidate string) (string, error) {
	comparison, err := r.Comparer.Compare(ctx, r.BenchesDir, baseline, candidate)
	if err == nil || r.Fallback == nil || !domain.IsToolNotFound(err) {
		return comparison, err
	}

	log.Info("comparison tool not installed, using built-in comparison", "reason", err.Error())
	return r.Fallback.Compare(ctx, r.BenchesDir, baseline, candidate)
}
