// Package tui is the terminal front end: a project list, a detail screen
// and a create form, all reading the one shared project container.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/trackr/internal/config"
	"github.com/thenoetrevino/trackr/internal/events"
	projectservice "github.com/thenoetrevino/trackr/internal/services/project"
	"github.com/thenoetrevino/trackr/internal/tui/components"
	"github.com/thenoetrevino/trackr/internal/tui/state"
	"github.com/thenoetrevino/trackr/internal/tui/theme"
)

// Model represents the application state for the TUI.
// Project data is never copied into the model; every frame reads the container.
type Model struct {
	ctx     context.Context
	service projectservice.Service
	config  *config.Config
	keys    keyMap
	logger  *slog.Logger

	uiState           *state.UIState
	listState         *state.ListState
	detailState       *state.DetailState
	formState         *state.FormState
	notificationState *state.NotificationState

	search  textinput.Model
	spinner spinner.Model

	eventChan   <-chan events.Event
	unsubscribe func()
}

// InitialModel creates the model around an injected container.
// Call Init (or run it with tea.NewProgram) to start the first load.
func InitialModel(ctx context.Context, service projectservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	search := textinput.New()
	search.Placeholder = "Search projects or clients..."
	search.Prompt = "/ "

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))),
	)

	eventChan, unsubscribe := service.Subscribe()

	return Model{
		ctx:               ctx,
		service:           service,
		config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		logger:            slog.Default().With("component", "tui"),
		uiState:           state.NewUIState(),
		listState:         state.NewListState(),
		detailState:       state.NewDetailState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
		search:            search,
		spinner:           sp,
		eventChan:         eventChan,
		unsubscribe:       unsubscribe,
	}
}

// Init starts the first load, the spinner and the event subscription.
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadProjects(m.ctx, m.service, false),
		m.spinner.Tick,
		listenForEvents(m.ctx, m.eventChan),
	)
}

// Close releases the container subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// snapshot reads the container once per call site
func (m Model) snapshot() projectservice.Snapshot {
	return m.service.Snapshot()
}

// selectedProjectID returns the id under the list cursor, or "" on an empty list
func (m Model) selectedProjectID() string {
	projects := m.snapshot().Projects
	if len(projects) == 0 || m.listState.Cursor() >= len(projects) {
		return ""
	}
	return projects[m.listState.Cursor()].ID
}

// busy reports whether a fetch is already in flight
func (m Model) busy() bool {
	snap := m.snapshot()
	return snap.Loading || snap.Refreshing
}
