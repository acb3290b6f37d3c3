// Package main provides bench-sentry, a CI helper that benchmarks a pull
// request, reruns the same benchmarks on the target branch, and prints a
// comparison.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode propagates a failing tool's exit code, so the CI system sees
// the same status the tool produced. Anything else maps to 1.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
