// Package benchcmpcli invokes an external benchmark comparison tool such
// as cargo-benchcmp.
package benchcmpcli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
)

// Adapter implements ports.Comparer by running the comparison tool inside
// the benches directory with two positional arguments, baseline first.
type Adapter struct {
	tool   string
	stderr io.Writer
}

// New creates a comparer for the named tool. Resolution is deferred to
// Compare so callers can distinguish "tool missing" from construction
// errors and fall back to the built-in comparer.
func New(tool string) *Adapter {
	return &Adapter{tool: tool, stderr: os.Stderr}
}

// Compare runs the tool with cwd set to dir. A missing tool surfaces as a
// ToolNotFoundError; a failing tool propagates its exit error with
// whatever output it produced.
func (a *Adapter) Compare(ctx context.Context, dir, baseline, candidate string) (string, error) {
	toolPath, err := exec.LookPath(a.tool)
	if err != nil {
		return "", domain.NewToolNotFoundError(a.tool)
	}

	cmd := exec.CommandContext(ctx, toolPath, baseline, candidate)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = a.stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("running %s: %w", a.tool, err)
	}
	return stdout.String(), nil
}
