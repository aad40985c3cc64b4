package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/trackr/internal/app"
	"github.com/thenoetrevino/trackr/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the shared project service
	ctx context.Context

	// ownsApp is false when the app was injected and is closed by its owner
	ownsApp bool
}

// NewCLI builds the application container from the given config
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	application, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{
		App:     application,
		ctx:     ctx,
		ownsApp: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.ownsApp {
		return nil
	}
	return c.App.Close()
}
