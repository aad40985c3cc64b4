package project

import "errors"

// Domain errors for project service
var (
	// ErrInvalidProjectID is returned for an empty project ID
	ErrInvalidProjectID = errors.New("invalid project ID")
)
