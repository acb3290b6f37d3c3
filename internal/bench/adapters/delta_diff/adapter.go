// Package deltadiff is the built-in comparer, used when the external
// comparison tool is not installed on the CI image.
package deltadiff

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/RReverser/bench-sentry/internal/bench/domain"
)

// Adapter implements ports.Comparer by parsing both artifacts and
// rendering a delta table. When neither artifact contains a recognizable
// benchmark line it degrades to a unified diff of the raw files, so the
// build log still shows what changed.
type Adapter struct{}

// New creates a new built-in comparer.
func New() *Adapter {
	return &Adapter{}
}

// Compare reads both artifacts from dir and returns the comparison text.
func (a *Adapter) Compare(_ context.Context, dir, baseline, candidate string) (string, error) {
	baseRaw, err := os.ReadFile(filepath.Join(dir, baseline))
	if err != nil {
		return "", fmt.Errorf("reading baseline artifact: %w", err)
	}
	candRaw, err := os.ReadFile(filepath.Join(dir, candidate))
	if err != nil {
		return "", fmt.Errorf("reading candidate artifact: %w", err)
	}

	baseResults, err := domain.ParseResults(bytes.NewReader(baseRaw))
	if err != nil {
		return "", fmt.Errorf("parsing baseline artifact: %w", err)
	}
	candResults, err := domain.ParseResults(bytes.NewReader(candRaw))
	if err != nil {
		return "", fmt.Errorf("parsing candidate artifact: %w", err)
	}

	comparison := domain.Compare(baseResults, candResults)
	if !comparison.HasData() {
		return lineDiff(baseline, candidate, baseRaw, candRaw)
	}
	return comparison.RenderTable(baseline, candidate), nil
}

// lineDiff produces a unified diff of the raw artifacts with three context
// lines, or an empty string when the artifacts are identical.
func lineDiff(baselineName, candidateName string, base, candidate []byte) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(base)),
		B:        difflib.SplitLines(string(candidate)),
		FromFile: baselineName,
		ToFile:   candidateName,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("computing unified diff: %w", err)
	}
	// The final SplitLines element is an empty string, which shows up as a
	// bare space context line; trim it along with the trailing newline.
	return strings.TrimRight(text, " \n"), nil
}
