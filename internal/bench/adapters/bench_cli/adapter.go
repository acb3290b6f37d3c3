// Package benchcli runs the configured benchmark command and captures its
// standard output as an artifact file.
package benchcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
)

// Adapter implements ports.BenchRunner by invoking an external benchmark
// command (e.g. "cargo bench") in the current working tree.
type Adapter struct {
	command []string
	stderr  io.Writer
}

// New creates a benchmark runner for the given command line. The command's
// stderr passes through to the CI log; only stdout is captured.
func New(command []string) (*Adapter, error) {
	if len(command) == 0 {
		return nil, errors.New("benchmark command is empty")
	}
	return &Adapter{command: command, stderr: os.Stderr}, nil
}

// Run executes the benchmark command once, redirecting stdout to the
// artifact file. The artifact's parent directory is created if missing.
func (a *Adapter) Run(ctx context.Context, artifactPath string) error {
	toolPath, err := exec.LookPath(a.command[0])
	if err != nil {
		return domain.NewToolNotFoundError(a.command[0])
	}

	if err := os.MkdirAll(filepath.Dir(artifactPath), 0o755); err != nil {
		return fmt.Errorf("creating benches directory: %w", err)
	}

	f, err := os.Create(artifactPath)
	if err != nil {
		return fmt.Errorf("creating artifact %s: %w", artifactPath, err)
	}

	cmd := exec.CommandContext(ctx, toolPath, a.command[1:]...)
	cmd.Stdout = f
	cmd.Stderr = a.stderr

	if err := cmd.Run(); err != nil {
		//nolint:errcheck // Best effort close on the failure path
		_ = f.Close()
		return fmt.Errorf("running benchmark command: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing artifact %s: %w", artifactPath, err)
	}
	return nil
}
