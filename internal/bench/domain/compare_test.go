package domain

import (
	"strings"
	"testing"
)

func TestCompare(t *testing.T) {
	baseline := []Result{
		{Name: "parse_angular", NsPerOp: 100},
		{Name: "parse_jquery", NsPerOp: 200},
		{Name: "removed_bench", NsPerOp: 50},
	}
	candidate := []Result{
		{Name: "parse_angular", NsPerOp: 110},
		{Name: "parse_jquery", NsPerOp: 150},
		{Name: "new_bench", NsPerOp: 75},
	}

	c := Compare(baseline, candidate)

	if len(c.Deltas) != 2 {
		t.Fatalf("got %d deltas, want 2", len(c.Deltas))
	}
	if c.Deltas[0].Name != "parse_angular" || c.Deltas[1].Name != "parse_jquery" {
		t.Errorf("deltas out of candidate order: %+v", c.Deltas)
	}
	if len(c.BaselineOnly) != 1 || c.BaselineOnly[0].Name != "removed_bench" {
		t.Errorf("BaselineOnly = %+v, want removed_bench", c.BaselineOnly)
	}
	if len(c.CandidateOnly) != 1 || c.CandidateOnly[0].Name != "new_bench" {
		t.Errorf("CandidateOnly = %+v, want new_bench", c.CandidateOnly)
	}
	if !c.HasData() {
		t.Error("HasData() = false, want true")
	}
}

func TestCompare_Empty(t *testing.T) {
	c := Compare(nil, nil)
	if c.HasData() {
		t.Error("HasData() = true for empty comparison")
	}
}

func TestDelta_Diffs(t *testing.T) {
	tests := []struct {
		name    string
		delta   Delta
		wantNs  float64
		wantPct float64
	}{
		{
			name:    "regression",
			delta:   Delta{Baseline: 100, Candidate: 150},
			wantNs:  50,
			wantPct: 50,
		},
		{
			name:    "improvement",
			delta:   Delta{Baseline: 200, Candidate: 150},
			wantNs:  -50,
			wantPct: -25,
		},
		{
			name:    "zero baseline does not divide",
			delta:   Delta{Baseline: 0, Candidate: 150},
			wantNs:  150,
			wantPct: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.delta.DiffNs(); got != tt.wantNs {
				t.Errorf("DiffNs() = %v, want %v", got, tt.wantNs)
			}
			if got := tt.delta.DiffPct(); got != tt.wantPct {
				t.Errorf("DiffPct() = %v, want %v", got, tt.wantPct)
			}
		})
	}
}

func TestComparison_RenderTable(t *testing.T) {
	c := Comparison{
		Deltas: []Delta{
			{Name: "parse_angular", Baseline: 100, Candidate: 150},
		},
		BaselineOnly:  []Result{{Name: "removed_bench", NsPerOp: 50}},
		CandidateOnly: []Result{{Name: "new_bench", NsPerOp: 75}},
	}

	table := c.RenderTable("main", "PR_123")

	if !strings.Contains(table, "main ns/iter") || !strings.Contains(table, "PR_123 ns/iter") {
		t.Errorf("table header missing artifact names:\n%s", table)
	}
	if !strings.Contains(table, "parse_angular") {
		t.Errorf("table missing matched benchmark:\n%s", table)
	}
	if !strings.Contains(table, "+50") || !strings.Contains(table, "+50.00%") {
		t.Errorf("table missing signed deltas:\n%s", table)
	}
	if !strings.Contains(table, "removed_bench") || !strings.Contains(table, "new_bench") {
		t.Errorf("table missing one-sided benchmarks:\n%s", table)
	}
	if strings.HasSuffix(table, "\n") {
		t.Error("table has trailing newline")
	}

	// Every row must be aligned into five columns.
	lines := strings.Split(table, "\n")
	if len(lines) != 4 {
		t.Errorf("got %d table lines, want 4:\n%s", len(lines), table)
	}
}
