package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ToolNotFoundError means an external collaborator (benchmark tool, git,
// comparison tool) could not be resolved on PATH.
type ToolNotFoundError struct {
	Tool string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s not found on PATH", e.Tool)
}

// NewToolNotFoundError creates a new ToolNotFoundError.
func NewToolNotFoundError(tool string) *ToolNotFoundError {
	return &ToolNotFoundError{Tool: tool}
}

// IsToolNotFound checks if an error is or wraps a ToolNotFoundError.
// It also recognizes the message exec.LookPath produces, so adapters that
// forget to wrap still classify correctly.
func IsToolNotFound(err error) bool {
	if err == nil {
		return false
	}

	var notFoundErr *ToolNotFoundError
	if errors.As(err, &notFoundErr) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "not found on PATH")
}
