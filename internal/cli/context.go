package cli

import (
	"context"
	"errors"

	"github.com/thenoetrevino/trackr/internal/app"
	"github.com/thenoetrevino/trackr/internal/config"
)

type contextKey int

const (
	appKey contextKey = iota
	configKey
)

// WithApp stores a ready app container in the context. Commands use it
// instead of building their own; tests inject one this way.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the resolved config (file, env and flags) in the context
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the config stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}

// GetCLIFromContext returns a CLI around the injected app, or builds one
// from the config in the context (loading the default config if none).
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, errors.New("nil context")
	}

	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, ctx: ctx}, nil
	}

	cfg := ConfigFromContext(ctx)
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	return NewCLI(ctx, cfg)
}
