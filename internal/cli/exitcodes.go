package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/trackr/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: simulated fetch failures, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, wrong argument counts, unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a requested project was not found.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: Invalid status values, empty names, malformed dates.
	ExitValidation = 5
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by a command to its process exit code
func ExitCode(err error) int {
	var usage *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, models.ErrProjectNotFound):
		return ExitNotFound
	case models.IsValidationError(err):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code used in JSON error output
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrProjectNotFound):
		return "PROJECT_NOT_FOUND"
	case models.IsValidationError(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, models.ErrFetchFailed):
		return "FETCH_FAILED"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "TIMEOUT"
	default:
		return "PROJECT_ERROR"
	}
}
