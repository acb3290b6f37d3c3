// Package ports declares the interfaces the run sequence orchestrates.
// Adapters shell out to external tools; tests substitute recording fakes.
package ports

import "context"

// BenchRunner executes the benchmark suite once and writes its standard
// output to the artifact file at the given path.
type BenchRunner interface {
	Run(ctx context.Context, artifactPath string) error
}

// SourceControl switches the working tree to the target branch. The three
// operations mirror the version-control client calls the run sequence
// makes, in order.
type SourceControl interface {
	// RestrictRemote configures the remote to track only the given branch.
	RestrictRemote(ctx context.Context, branch string) error
	// Fetch fetches the named branch from the remote.
	Fetch(ctx context.Context, branch string) error
	// Checkout switches the working tree to the named branch.
	Checkout(ctx context.Context, branch string) error
}

// Comparer compares two benchmark artifacts inside dir and returns the
// human-readable comparison. Arguments are file names relative to dir,
// baseline first.
type Comparer interface {
	Compare(ctx context.Context, dir, baseline, candidate string) (string, error)
}

// Reporter publishes a finished comparison somewhere humans look, e.g. a
// pull request comment.
type Reporter interface {
	Publish(ctx context.Context, comparison string) error
}
