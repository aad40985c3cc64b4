package tui

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/trackr/internal/api"
	"github.com/thenoetrevino/trackr/internal/config"
	"github.com/thenoetrevino/trackr/internal/database"
	"github.com/thenoetrevino/trackr/internal/events"
	"github.com/thenoetrevino/trackr/internal/models"
	projectservice "github.com/thenoetrevino/trackr/internal/services/project"
)

var errInjected = errors.New("injected failure")

// flakyClient wraps the stub so tests can fail individual calls and count fetches
type flakyClient struct {
	api.Client
	fetches    atomic.Int32
	failFetch  atomic.Bool
	failUpdate atomic.Bool
	failAdd    atomic.Bool
}

func (c *flakyClient) GetProjects(ctx context.Context) ([]*models.Project, error) {
	c.fetches.Add(1)
	if c.failFetch.Load() {
		return nil, models.ErrFetchFailed
	}
	return c.Client.GetProjects(ctx)
}

func (c *flakyClient) UpdateProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	if c.failUpdate.Load() {
		return nil, errInjected
	}
	return c.Client.UpdateProjectStatus(ctx, id, status)
}

func (c *flakyClient) AddProject(ctx context.Context, input models.ProjectInput) (*models.Project, error) {
	if c.failAdd.Load() {
		return nil, errInjected
	}
	return c.Client.AddProject(ctx, input)
}

// setupTestModel creates a sized model over a zero-delay stub seeded with the demo projects.
// The model has not loaded yet; call loadModel for that.
func setupTestModel(t *testing.T) (Model, *flakyClient) {
	t.Helper()
	return setupTestModelWithProjects(t, database.DefaultProjects())
}

// setupTestModelWithProjects is setupTestModel with a custom seed
func setupTestModelWithProjects(t *testing.T, initial []*models.Project) (Model, *flakyClient) {
	t.Helper()

	store, err := database.NewMemoryStore(initial)
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	client := &flakyClient{Client: api.NewStub(store, api.WithDelay(0), api.WithFailureRate(0))}

	broker := events.NewBroker(nil)
	t.Cleanup(func() { _ = broker.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	svc := projectservice.NewService(client, broker, nil)
	m := InitialModel(ctx, svc, config.Default())
	t.Cleanup(m.Close)

	m = UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, client
}

// loadModel runs the initial fetch the way Init would
func loadModel(t *testing.T, m Model) Model {
	t.Helper()
	return runCmd(t, m, loadProjects(m.ctx, m.service, false))
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// press sends one key and returns the model and the command it produced
func press(m Model, k string) (Model, tea.Cmd) {
	updatedModel, cmd := m.Update(keyPress(k))
	return updatedModel.(Model), cmd
}

// pressKeys sends keys in order, discarding commands
func pressKeys(m Model, keys ...string) Model {
	for _, k := range keys {
		m, _ = press(m, k)
	}
	return m
}

// typeText types each rune of s as a key press
func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m = UpdateModelWithMessage(m, tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "}))
			continue
		}
		m = UpdateModelWithMessage(m, tea.KeyPressMsg(tea.Key{Code: r, Text: string(r)}))
	}
	return m
}

// keyPress builds a key message from its string form
func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "shift+tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: k})
}

// runCmd executes an API command and feeds its result back into the model.
// Only trackr's own messages are delivered; cursor blinks and spinner ticks are dropped.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("command did not finish")
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			if c != nil {
				m = runCmd(t, m, c)
			}
		}
		return m
	case projectsLoadedMsg, statusUpdatedMsg, projectCreatedMsg, stateChangedMsg:
		return UpdateModelWithMessage(m, msg)
	}
	return m
}

// viewText renders the model and strips styling so tests can match plain text
func viewText(m Model) string {
	return ansi.Strip(m.View().Content)
}
