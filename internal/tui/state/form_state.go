package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/trackr/internal/models"
	"github.com/thenoetrevino/trackr/internal/tui/huhforms"
)

// FormState manages the create project form.
// The huh form writes straight into Values, so the draft survives a rebuilt form.
type FormState struct {
	Form   *huh.Form
	Values huhforms.ProjectFormValues

	saving  bool
	pending uint64
	nextSeq uint64
}

// NewFormState creates an empty form state with no open form.
func NewFormState() *FormState {
	s := &FormState{}
	s.Reset()
	return s
}

// Reset drops the form and its draft. A create request still in flight
// is forgotten, so its result no longer touches this form.
func (s *FormState) Reset() {
	s.Form = nil
	s.Values = huhforms.ProjectFormValues{Status: models.StatusActive}
	s.saving = false
	s.pending = 0
}

// Open builds a fresh form over the current draft.
func (s *FormState) Open() *huh.Form {
	s.Form = huhforms.CreateProjectForm(&s.Values)
	return s.Form
}

// Completed reports whether the user submitted the form.
func (s *FormState) Completed() bool {
	return s.Form != nil && s.Form.State == huh.StateCompleted
}

// Saving reports whether a create request is in flight.
func (s *FormState) Saving() bool {
	return s.saving
}

// BeginSave marks a create request as in flight and returns its sequence number.
func (s *FormState) BeginSave() uint64 {
	s.nextSeq++
	s.pending = s.nextSeq
	s.saving = true
	return s.pending
}

// FinishSave ends the request tagged seq. It returns false for a request
// this form no longer waits on.
func (s *FormState) FinishSave(seq uint64) bool {
	if !s.saving || seq != s.pending {
		return false
	}
	s.saving = false
	s.pending = 0
	return true
}

// Input builds a normalized ProjectInput from the draft.
func (s *FormState) Input() models.ProjectInput {
	return models.ProjectInput{
		Name:        s.Values.Name,
		ClientName:  s.Values.Client,
		Description: s.Values.Description,
		StartDate:   s.Values.StartDate,
		EndDate:     s.Values.EndDate,
		Status:      s.Values.Status,
	}.Normalize()
}

// MissingRequired reports whether name, client or start date is blank.
func (s *FormState) MissingRequired() bool {
	in := s.Input()
	return in.Name == "" || in.ClientName == "" || in.StartDate == ""
}
