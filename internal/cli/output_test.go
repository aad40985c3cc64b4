package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/trackr/internal/models"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestSuccess_QuietPrintsID(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)

	require.NoError(t, f.Success(&models.Project{ID: "7", Name: "Audit"}))
	assert.Equal(t, "7\n", out.String())
}

func TestSuccess_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(&models.Project{ID: "7", Name: "Audit"}))

	var resp struct {
		Success bool           `json:"success"`
		Data    models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Audit", resp.Data.Name)
}

func TestResult_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Result(map[string]any{"projects": []string{"a", "b"}}))
	assert.JSONEq(t, `{"success":true,"projects":["a","b"]}`, out.String())
}

func TestFail_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	err := fmt.Errorf("%w: 42", models.ErrProjectNotFound)
	got := f.Fail(err)

	assert.Same(t, err, got)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "❌ Error: project not found: 42")
	assert.Contains(t, errOut.String(), "💡 Suggestion: run 'trackr project list'")
}

func TestFail_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	_ = f.Fail(models.ErrEmptyName)
	assert.Empty(t, errOut.String())

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, models.ErrEmptyName.Error(), resp.Error.Message)
}
