package state

import (
	"testing"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/trackr/internal/models"
)

// TestFormState_InputTrimsAndDetectsMissing ensures whitespace-only fields count as missing.
func TestFormState_InputTrimsAndDetectsMissing(t *testing.T) {
	s := NewFormState()
	s.Values.Name = "  Website  "
	s.Values.Client = "   "
	s.Values.StartDate = "2024-01-15"

	if !s.MissingRequired() {
		t.Error("MissingRequired() = false with a blank client")
	}

	s.Values.Client = "Acme"
	if s.MissingRequired() {
		t.Error("MissingRequired() = true with every required field set")
	}

	in := s.Input()
	if in.Name != "Website" {
		t.Errorf("Input().Name = %q, want trimmed", in.Name)
	}
	if in.Status != models.StatusActive {
		t.Errorf("Input().Status = %q, want active", in.Status)
	}
}

func TestFormState_OpenKeepsDraft(t *testing.T) {
	s := NewFormState()
	s.Values.Name = "Brand Refresh"
	s.Values.Status = models.StatusOnHold

	if s.Open() == nil || s.Form == nil {
		t.Fatal("Open() should build a form")
	}
	if s.Values.Name != "Brand Refresh" || s.Values.Status != models.StatusOnHold {
		t.Errorf("Open() changed the draft: %+v", s.Values)
	}
	if s.Completed() {
		t.Error("a fresh form should not be completed")
	}

	s.Form.State = huh.StateCompleted
	if !s.Completed() {
		t.Error("Completed() = false after the form completed")
	}
}

func TestFormState_Reset(t *testing.T) {
	s := NewFormState()
	s.Open()
	s.Values.Name = "x"
	s.Values.Status = models.StatusCompleted
	s.BeginSave()

	s.Reset()

	if s.Form != nil || s.Values.Name != "" || s.Values.Status != models.StatusActive || s.Saving() {
		t.Error("Reset() left stale form state")
	}
}

func TestFormState_FinishSaveMatchesPendingRequest(t *testing.T) {
	s := NewFormState()

	seq := s.BeginSave()
	if !s.Saving() {
		t.Fatal("BeginSave() should mark the form as saving")
	}
	if s.FinishSave(seq + 1) {
		t.Error("FinishSave() accepted an unknown request")
	}
	if !s.Saving() {
		t.Error("an unknown request should not clear saving")
	}
	if !s.FinishSave(seq) {
		t.Error("FinishSave() rejected the pending request")
	}
	if s.Saving() {
		t.Error("saving should clear once the pending request finishes")
	}
	if s.FinishSave(seq) {
		t.Error("a request should only finish once")
	}
}

// TestFormState_ResetForgetsPendingRequest covers a cancelled save followed by a new draft
func TestFormState_ResetForgetsPendingRequest(t *testing.T) {
	s := NewFormState()
	first := s.BeginSave()

	s.Reset()
	s.Values.Name = "Second draft"

	if s.FinishSave(first) {
		t.Error("a request from before Reset() should be stale")
	}

	second := s.BeginSave()
	if second == first {
		t.Fatal("sequence numbers must not repeat across Reset()")
	}
	if s.FinishSave(first) {
		t.Error("the cancelled request should not finish the new one")
	}
	if !s.Saving() {
		t.Error("the new request should still be in flight")
	}
}
