package state

// ListState manages the project list screen.
// This includes row selection, scrolling and whether the filter chips are visible.
type ListState struct {
	// cursor is the index of the selected row in the filtered list
	cursor int

	// scrollOffset is the index of the first visible row
	scrollOffset int

	// visible is how many rows fit on screen
	visible int

	// showFilters toggles the status filter chips
	showFilters bool
}

// NewListState creates a new ListState with default values.
func NewListState() *ListState {
	return &ListState{}
}

// Cursor returns the index of the selected row.
func (s *ListState) Cursor() int {
	return s.cursor
}

// MoveUp moves the selection up one row, stopping at the top.
func (s *ListState) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
	s.keepCursorVisible()
}

// MoveDown moves the selection down one row, stopping at the last of n rows.
func (s *ListState) MoveDown(n int) {
	if s.cursor < n-1 {
		s.cursor++
	}
	s.keepCursorVisible()
}

// Reset moves the selection back to the first row.
func (s *ListState) Reset() {
	s.cursor = 0
	s.scrollOffset = 0
}

// Clamp keeps the selection inside a list of n rows.
// Call after the filtered list changes.
func (s *ListState) Clamp(n int) {
	if n == 0 {
		s.Reset()
		return
	}
	if s.cursor >= n {
		s.cursor = n - 1
	}
	s.keepCursorVisible()
}

// SetVisibleRows records how many rows fit on screen and scrolls the
// cursor back into view if the window shrank.
func (s *ListState) SetVisibleRows(n int) {
	s.visible = max(n, 1)
	s.keepCursorVisible()
}

// VisibleRows returns the number of rows that fit on screen.
func (s *ListState) VisibleRows() int {
	return max(s.visible, 1)
}

// ScrollOffset returns the index of the first visible row.
func (s *ListState) ScrollOffset() int {
	return s.scrollOffset
}

func (s *ListState) keepCursorVisible() {
	visible := s.VisibleRows()
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+visible {
		s.scrollOffset = s.cursor - visible + 1
	}
}

// ShowFilters reports whether the filter chips are visible.
func (s *ListState) ShowFilters() bool {
	return s.showFilters
}

// ToggleFilters shows or hides the filter chips.
func (s *ListState) ToggleFilters() {
	s.showFilters = !s.showFilters
}
