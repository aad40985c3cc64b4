package state

import "github.com/thenoetrevino/trackr/internal/models"

// DetailState manages the project detail screen.
type DetailState struct {
	// ProjectID is the project being viewed
	ProjectID string

	// optionCursor is the highlighted status option
	optionCursor int

	// updating is true while a status update is in flight
	updating bool

	// pending tags the in-flight update, nextSeq hands out tags
	pending uint64
	nextSeq uint64
}

// NewDetailState creates an empty DetailState.
func NewDetailState() *DetailState {
	return &DetailState{}
}

// Open points the screen at a project and highlights its current status.
func (s *DetailState) Open(projectID string, current models.Status) {
	s.ProjectID = projectID
	s.updating = false
	s.pending = 0
	s.optionCursor = 0
	for i, st := range models.AllStatuses() {
		if st == current {
			s.optionCursor = i
		}
	}
}

// OptionCursor returns the highlighted status option index.
func (s *DetailState) OptionCursor() int {
	return s.optionCursor
}

// SelectedStatus returns the highlighted status.
func (s *DetailState) SelectedStatus() models.Status {
	return models.AllStatuses()[s.optionCursor]
}

// PrevOption highlights the previous status option.
func (s *DetailState) PrevOption() {
	if s.optionCursor > 0 {
		s.optionCursor--
	}
}

// NextOption highlights the next status option.
func (s *DetailState) NextOption() {
	if s.optionCursor < len(models.AllStatuses())-1 {
		s.optionCursor++
	}
}

// Updating reports whether a status update is in flight.
func (s *DetailState) Updating() bool {
	return s.updating
}

// BeginUpdate marks a status update as in flight and returns its sequence number.
func (s *DetailState) BeginUpdate() uint64 {
	s.nextSeq++
	s.pending = s.nextSeq
	s.updating = true
	return s.pending
}

// FinishUpdate ends the update tagged seq. It returns false when the screen
// has moved on to another project or another update since.
func (s *DetailState) FinishUpdate(seq uint64) bool {
	if !s.updating || seq != s.pending {
		return false
	}
	s.updating = false
	s.pending = 0
	return true
}
