// Package cmd wires the trackr cobra commands
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/trackr/internal/app"
	"github.com/thenoetrevino/trackr/internal/cli"
	"github.com/thenoetrevino/trackr/internal/cli/project"
	"github.com/thenoetrevino/trackr/internal/config"
	"github.com/thenoetrevino/trackr/internal/logging"
	"github.com/thenoetrevino/trackr/internal/server"
	"github.com/thenoetrevino/trackr/internal/tui"
)

// version is set at build time with -ldflags "-X github.com/thenoetrevino/trackr/cmd.version=..."
var version = "dev"

// logCloser releases the log file opened in PersistentPreRunE
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "trackr",
	Short: "Trackr - A terminal-based client project tracker",
	Long: `Trackr tracks client projects from the terminal.

Run without a subcommand to open the interactive UI, or use the project
subcommands from scripts and agents.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runTUI,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to the config file (default ~/.config/trackr/config.yaml)")
	flags.String("api-url", "", "Use a running 'trackr serve' at this URL instead of the local stub")
	flags.Duration("delay", 0, "Simulated API latency, e.g. 500ms")
	flags.Float64("failure-rate", 0, "Probability (0..1) that a project fetch fails")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(project.ProjectCmd())
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err == nil {
		return cli.ExitSuccess
	}

	slog.Error("command failed", "error", err)

	// Commands using the output formatter have already reported their error
	var usage *cli.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'trackr --help' for usage.\n", err)
	}
	return cli.ExitCode(err)
}

// loadConfig resolves the config file, environment and flags, stores the
// result in the command context and starts file logging
func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	closer, err := logging.Init(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithConfig(ctx, cfg))
	return nil
}

// applyFlags overrides config values with explicitly set global flags
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("api-url") {
		cfg.API.URL, _ = flags.GetString("api-url")
	}
	if flags.Changed("delay") {
		delay, _ := flags.GetDuration("delay")
		cfg.API.Delay = &delay
	}
	if flags.Changed("failure-rate") {
		rate, _ := flags.GetFloat64("failure-rate")
		cfg.API.FailureRate = &rate
	}

	if err := cfg.Validate(); err != nil {
		return &cli.UsageError{Err: err}
	}
	return nil
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive project tracker",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := cli.ConfigFromContext(ctx)

	a, err := app.New(ctx, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	model := tui.InitialModel(ctx, a.ProjectService, cfg)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the project API over HTTP",
		Long: `Serve the project API over HTTP, backed by the configured store and
the simulated API (latency and failure rate apply to list, update and create).

Endpoints:
  GET    /health
  GET    /metrics
  GET    /api/v1/projects
  POST   /api/v1/projects
  GET    /api/v1/projects/:id
  PATCH  /api/v1/projects/:id/status
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default from config, :8080)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := cli.ConfigFromContext(ctx)
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
	}

	// Mirror the file log to stderr
	logger := logging.New(os.Stderr, cfg.Log.Level)
	if w, ok := logCloser.(io.Writer); ok {
		logger = logging.New(io.MultiWriter(os.Stderr, w), cfg.Log.Level)
	}
	slog.SetDefault(logger)

	a, err := app.New(ctx, cfg, app.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("error closing app", "error", err)
		}
	}()

	store, err := a.Store()
	if err != nil {
		return &cli.UsageError{Err: fmt.Errorf("serve needs a local store, drop --api-url: %w", err)}
	}

	srv := server.New(a.Client(), store, server.Options{
		Addr:           cfg.Server.Addr,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Version:        version,
		Logger:         logger,
	})

	start := time.Now()
	logger.Info("trackr server starting", "addr", cfg.Server.Addr, "version", version, "pid", os.Getpid())
	if err := srv.Run(ctx); err != nil {
		return err
	}
	logger.Info("trackr server stopped", "uptime", time.Since(start).Round(time.Second))
	return nil
}
