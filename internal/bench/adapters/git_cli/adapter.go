// Package gitcli switches the CI working tree between refs via the git
// command line.
package gitcli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
)

// Adapter implements ports.SourceControl with the git CLI. It performs no
// rollback: a checkout that succeeded stays in place even when a later
// step fails.
type Adapter struct {
	gitPath string
	remote  string
	dir     string // working directory; empty means inherit
	stdout  io.Writer
	stderr  io.Writer
}

// New resolves git on PATH and returns an adapter bound to the given
// remote. dir overrides the working directory, which tests use to operate
// on throwaway repositories.
func New(remote, dir string) (*Adapter, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, domain.NewToolNotFoundError("git")
	}
	return &Adapter{
		gitPath: gitPath,
		remote:  remote,
		dir:     dir,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}, nil
}

// RestrictRemote configures the remote to track only the target branch, so
// the following fetch pulls exactly one ref.
func (a *Adapter) RestrictRemote(ctx context.Context, branch string) error {
	key := fmt.Sprintf("remote.%s.fetch", a.remote)
	return a.run(ctx, "config", key, FetchRefspec(a.remote, branch))
}

// Fetch fetches the target branch from the remote.
func (a *Adapter) Fetch(ctx context.Context, branch string) error {
	return a.run(ctx, "fetch", a.remote, branch)
}

// Checkout switches the working tree to the target branch.
func (a *Adapter) Checkout(ctx context.Context, branch string) error {
	return a.run(ctx, "checkout", branch)
}

// FetchRefspec builds the single-branch refspec used to restrict a remote.
// Example: FetchRefspec("origin", "main") ==
// "+refs/heads/main:refs/remotes/origin/main".
func FetchRefspec(remote, branch string) string {
	return fmt.Sprintf("+refs/heads/%s:refs/remotes/%s/%s", branch, remote, branch)
}

func (a *Adapter) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, a.gitPath, args...)
	cmd.Dir = a.dir
	cmd.Stdout = a.stdout
	cmd.Stderr = a.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return nil
}
