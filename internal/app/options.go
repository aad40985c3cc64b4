package app

import (
	"log/slog"

	"github.com/thenoetrevino/trackr/internal/api"
	"github.com/thenoetrevino/trackr/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger      *slog.Logger
	store       database.DataStore
	client      api.Client
	stubOptions []api.Option
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStore uses an existing data store instead of opening one from config.
// The App does not close a store it did not open.
func WithStore(store database.DataStore) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithClient replaces the API client entirely; no store is opened
func WithClient(client api.Client) Option {
	return func(cfg *appConfig) {
		cfg.client = client
	}
}

// WithStubOptions appends options to the in-process API stub
func WithStubOptions(opts ...api.Option) Option {
	return func(cfg *appConfig) {
		cfg.stubOptions = append(cfg.stubOptions, opts...)
	}
}
