package models

import (
	"errors"
	"strings"
)

// Lookup and transport errors
var (
	// ErrProjectNotFound indicates no project has the requested ID
	ErrProjectNotFound = errors.New("project not found")

	// ErrFetchFailed is the simulated network failure of a project fetch
	ErrFetchFailed = errors.New("failed to fetch projects, please try again")

	// ErrDuplicateID indicates a project with the same ID already exists
	ErrDuplicateID = errors.New("project ID already exists")
)

// Validation errors
var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrEmptyName         = errors.New("project name cannot be empty")
	ErrNameTooLong       = errors.New("project name cannot exceed 100 characters")
	ErrEmptyClientName   = errors.New("client name cannot be empty")
	ErrClientNameTooLong = errors.New("client name cannot exceed 100 characters")
	ErrEmptyStartDate    = errors.New("start date cannot be empty")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
	ErrEndBeforeStart    = errors.New("end date cannot be before start date")
)

var validationErrors = []error{
	ErrInvalidStatus,
	ErrEmptyName,
	ErrNameTooLong,
	ErrEmptyClientName,
	ErrClientNameTooLong,
	ErrEmptyStartDate,
	ErrInvalidDate,
	ErrEndBeforeStart,
}

// IsValidationError reports whether err is (or wraps) one of the validation errors
func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}

// MatchValidationError returns the validation error whose message prefixes msg,
// or nil. Used to recover sentinels from error text received over the wire.
func MatchValidationError(msg string) error {
	for _, v := range validationErrors {
		if strings.HasPrefix(msg, v.Error()) {
			return v
		}
	}
	return nil
}
