// Package app wires the store, API client, event broker and project service
// into a single container shared by the TUI, the CLI and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/trackr/internal/api"
	"github.com/thenoetrevino/trackr/internal/config"
	"github.com/thenoetrevino/trackr/internal/database"
	"github.com/thenoetrevino/trackr/internal/events"
	"github.com/thenoetrevino/trackr/internal/models"
	projectservice "github.com/thenoetrevino/trackr/internal/services/project"
)

// ErrNoLocalStore is returned when a caller needs the data store but the App
// talks to a remote server
var ErrNoLocalStore = errors.New("no local data store (client is remote)")

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Repository layer; nil when the client is remote
	store     database.DataStore
	ownsStore bool

	// API boundary used by the service
	client api.Client

	// Event system for live updates
	eventClient *events.Broker

	// Service layer (shared state container)
	ProjectService projectservice.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// With cfg.API.URL set the App uses an HTTP client and opens no store;
// otherwise it opens the configured store and wraps it in the API stub.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	a := &App{
		Config: cfg,
		logger: options.logger,
	}

	switch {
	case options.client != nil:
		a.client = options.client
		a.store = options.store

	case cfg.API.URL != "":
		a.client = api.NewHTTPClient(cfg.API.URL, nil)
		a.logger.Info("using remote API", "url", cfg.API.URL)

	default:
		store := options.store
		if store == nil {
			seed, err := seedProjects(cfg)
			if err != nil {
				return nil, err
			}
			store, err = database.Open(ctx, cfg.Store.Driver, cfg.Store.DSN, seed)
			if err != nil {
				return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
			}
			a.ownsStore = true
		}
		a.store = store

		stubOpts := []api.Option{
			api.WithDelay(cfg.API.DelayOrDefault()),
			api.WithFailureRate(cfg.API.FailureRateOrDefault()),
			api.WithLogger(a.logger),
		}
		a.client = api.NewStub(store, append(stubOpts, options.stubOptions...)...)
		a.logger.Info("using local API stub",
			"driver", cfg.Store.Driver,
			"delay", cfg.API.DelayOrDefault(),
			"failure_rate", cfg.API.FailureRateOrDefault())
	}

	a.eventClient = events.NewBroker(a.logger)
	a.ProjectService = projectservice.NewService(a.client, a.eventClient, a.logger)

	return a, nil
}

// seedProjects returns the initial records: the seed file if configured, else the built-in mock data
func seedProjects(cfg *config.Config) ([]*models.Project, error) {
	if cfg.Store.SeedFile == "" {
		return database.DefaultProjects(), nil
	}
	projects, err := database.LoadSeedFile(cfg.Store.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed file: %w", err)
	}
	return projects, nil
}

// Client returns the API client used by the project service
func (a *App) Client() api.Client {
	return a.client
}

// Store returns the local data store, or ErrNoLocalStore when remote
func (a *App) Store() (database.DataStore, error) {
	if a.store == nil {
		return nil, ErrNoLocalStore
	}
	return a.store, nil
}

// Events returns the broker backing ProjectService subscriptions
func (a *App) Events() *events.Broker {
	return a.eventClient
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	var errs []error
	if a.eventClient != nil {
		errs = append(errs, a.eventClient.Close())
	}
	if a.ownsStore && a.store != nil {
		errs = append(errs, a.store.Close())
	}
	return errors.Join(errs...)
}
