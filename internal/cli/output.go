package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result.
// In quiet mode only the ID is printed when data has one.
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(interface{ GetID() string }); ok {
			_, err := fmt.Fprintln(f.out(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the current mode and returns it for the command to propagate
func (f *OutputFormatter) Fail(err error) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err))
	return err
}

// Printf writes human-readable output, downsampling styles for the writer
func (f *OutputFormatter) Printf(format string, args ...any) {
	_, _ = lipgloss.Fprintf(f.out(), format, args...)
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := fmt.Fprintln(f.out(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

func suggestionFor(err error) string {
	switch ErrorCode(err) {
	case "PROJECT_NOT_FOUND":
		return "run 'trackr project list' to see project IDs"
	case "FETCH_FAILED":
		return "the request failed, try again"
	}
	return ""
}

// Result writes a JSON success envelope with the given top-level fields
func (f *OutputFormatter) Result(fields map[string]any) error {
	payload := map[string]any{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return json.NewEncoder(f.out()).Encode(payload)
}
