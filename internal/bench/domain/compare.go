package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Delta is the change in one benchmark between a baseline run and a
// candidate run.
type Delta struct {
	Name      string
	Baseline  float64
	Candidate float64
}

// DiffNs returns the absolute change in ns per operation. Positive means
// the candidate is slower.
func (d Delta) DiffNs() float64 {
	return d.Candidate - d.Baseline
}

// DiffPct returns the relative change as a percentage of the baseline.
func (d Delta) DiffPct() float64 {
	if d.Baseline == 0 {
		return 0
	}
	return d.DiffNs() / d.Baseline * 100
}

// Comparison pairs up two result sets by benchmark name.
type Comparison struct {
	Deltas        []Delta  // present in both runs, candidate order
	BaselineOnly  []Result // removed benchmarks
	CandidateOnly []Result // new benchmarks
}

// Compare matches candidate results against baseline results by name.
// Delta order follows the candidate artifact; leftovers keep the order of
// the artifact they came from.
func Compare(baseline, candidate []Result) Comparison {
	baseByName := make(map[string]Result, len(baseline))
	for _, r := range baseline {
		baseByName[r.Name] = r
	}

	var c Comparison
	matched := make(map[string]struct{}, len(candidate))
	for _, cand := range candidate {
		base, ok := baseByName[cand.Name]
		if !ok {
			c.CandidateOnly = append(c.CandidateOnly, cand)
			continue
		}
		matched[cand.Name] = struct{}{}
		c.Deltas = append(c.Deltas, Delta{
			Name:      cand.Name,
			Baseline:  base.NsPerOp,
			Candidate: cand.NsPerOp,
		})
	}
	for _, base := range baseline {
		if _, ok := matched[base.Name]; !ok {
			c.BaselineOnly = append(c.BaselineOnly, base)
		}
	}
	return c
}

// HasData reports whether the comparison contains any benchmarks at all.
func (c Comparison) HasData() bool {
	return len(c.Deltas)+len(c.BaselineOnly)+len(c.CandidateOnly) > 0
}

// RenderTable formats the comparison the way cargo-benchcmp does: one row
// per benchmark with baseline, candidate, and signed deltas. Column labels
// carry the artifact names so the table reads the same as the external
// tool's output.
func (c Comparison) RenderTable(baselineName, candidateName string) string {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "name\t%s ns/iter\t%s ns/iter\tdiff ns/iter\tdiff %%\n", baselineName, candidateName)
	for _, d := range c.Deltas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%+.0f\t%+.2f%%\n",
			d.Name, formatNs(d.Baseline), formatNs(d.Candidate), d.DiffNs(), d.DiffPct())
	}
	for _, r := range c.BaselineOnly {
		fmt.Fprintf(w, "%s\t%s\t-\t-\t-\n", r.Name, formatNs(r.NsPerOp))
	}
	for _, r := range c.CandidateOnly {
		fmt.Fprintf(w, "%s\t-\t%s\t-\t-\n", r.Name, formatNs(r.NsPerOp))
	}

	// tabwriter only errors when its writer errors; bytes.Buffer never does.
	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}

func formatNs(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
