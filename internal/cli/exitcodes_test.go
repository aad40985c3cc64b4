package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/trackr/internal/models"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"usage", &UsageError{Err: errors.New("accepts 1 arg(s), received 0")}, ExitUsage},
		{"not found", fmt.Errorf("%w: 42", models.ErrProjectNotFound), ExitNotFound},
		{"validation", models.ErrEmptyName, ExitValidation},
		{"wrapped validation", fmt.Errorf("create: %w", models.ErrInvalidDate), ExitValidation},
		{"fetch failure", models.ErrFetchFailed, ExitError},
		{"unknown", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "PROJECT_NOT_FOUND", ErrorCode(models.ErrProjectNotFound))
	assert.Equal(t, "VALIDATION_ERROR", ErrorCode(models.ErrEndBeforeStart))
	assert.Equal(t, "FETCH_FAILED", ErrorCode(models.ErrFetchFailed))
	assert.Equal(t, "TIMEOUT", ErrorCode(context.DeadlineExceeded))
	assert.Equal(t, "PROJECT_ERROR", ErrorCode(errors.New("boom")))
}
