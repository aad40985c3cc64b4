package state

// Screen identifies which of the three screens is shown
type Screen int

const (
	ListScreen   Screen = iota // Project list with search and filters
	DetailScreen               // One project with status options
	CreateScreen               // New project form
)

// Mode represents the interaction mode on the current screen.
// Each mode determines which keyboard shortcuts are active.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	SearchMode             // Typing into the search box (/)
	HelpMode               // Displaying help screen
	AlertMode              // Blocking alert, dismissed with any key
)

// Alert is a blocking message shown over the current screen
type Alert struct {
	Title   string
	Message string
}

// UIState manages the user interface state.
// This includes the current screen and mode, terminal dimensions and any blocking alert.
type UIState struct {
	screen Screen
	mode   Mode
	width  int
	height int
	alert  *Alert

	// prevMode is restored when an alert is dismissed
	prevMode Mode
}

// NewUIState creates a new UIState showing the list screen.
func NewUIState() *UIState {
	return &UIState{
		screen: ListScreen,
		mode:   NormalMode,
	}
}

// Screen returns the current screen.
func (s *UIState) Screen() Screen {
	return s.screen
}

// SetScreen switches screens and resets the mode to normal.
func (s *UIState) SetScreen(screen Screen) {
	s.screen = screen
	s.mode = NormalMode
	s.alert = nil
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize updates the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// ShowAlert displays a blocking alert until DismissAlert is called.
func (s *UIState) ShowAlert(title, message string) {
	if s.mode != AlertMode {
		s.prevMode = s.mode
	}
	s.alert = &Alert{Title: title, Message: message}
	s.mode = AlertMode
}

// Alert returns the current alert, or nil.
func (s *UIState) Alert() *Alert {
	return s.alert
}

// DismissAlert closes the alert and restores the previous mode.
func (s *UIState) DismissAlert() {
	s.alert = nil
	s.mode = s.prevMode
}
