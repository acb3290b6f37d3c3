package domain

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Result is a single benchmark measurement parsed from a benchmark
// artifact.
type Result struct {
	Name    string
	NsPerOp float64
	// Variance is the +/- spread reported by cargo bench; 0 when the
	// format does not carry one.
	Variance float64
}

var (
	// cargo bench: "test fib_20 ... bench:      37,174 ns/iter (+/- 1,273)"
	cargoBenchRe = regexp.MustCompile(`^test\s+(\S+)\s+\.\.\.\s+bench:\s+([0-9,]+(?:\.[0-9]+)?)\s+ns/iter\s+\(\+/-\s+([0-9,]+(?:\.[0-9]+)?)\)`)

	// go test -bench: "BenchmarkParse-8   1000   125678 ns/op"
	goBenchRe = regexp.MustCompile(`^(Benchmark\S+)\s+(\d+)\s+([0-9.]+)\s+ns/op`)
)

// ParseResults scans benchmark tool output and returns every measurement
// it recognizes. Both cargo bench (ns/iter) and go test -bench (ns/op)
// line formats are accepted; anything else is skipped, so compile noise
// and test summaries in the artifact are harmless.
func ParseResults(r io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if res, ok := parseLine(scanner.Text()); ok {
			results = append(results, res)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning benchmark output: %w", err)
	}
	return results, nil
}

func parseLine(line string) (Result, bool) {
	if m := cargoBenchRe.FindStringSubmatch(line); m != nil {
		ns, err := parseMeasurement(m[2])
		if err != nil {
			return Result{}, false
		}
		variance, err := parseMeasurement(m[3])
		if err != nil {
			return Result{}, false
		}
		return Result{Name: m[1], NsPerOp: ns, Variance: variance}, true
	}

	if m := goBenchRe.FindStringSubmatch(line); m != nil {
		ns, err := parseMeasurement(m[3])
		if err != nil {
			return Result{}, false
		}
		return Result{Name: m[1], NsPerOp: ns}, true
	}

	return Result{}, false
}

// parseMeasurement parses a number that may carry cargo's thousands
// separators, e.g. "37,174" or "1,273.5".
func parseMeasurement(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
