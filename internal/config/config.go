// Package config loads trackr settings from the YAML config file, a .env file
// and TRACKR_* environment variables, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/trackr/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Default values for settings that are not configured
const (
	DefaultAPIDelay       = time.Second
	DefaultFailureRate    = 0.05
	DefaultStoreDriver    = "memory"
	DefaultServerAddr     = ":8080"
	DefaultLogLevel       = "debug"
	defaultConfigDirName  = "trackr"
	defaultConfigFileName = "config.yaml"
)

// ErrInvalidConfig is returned when a loaded value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	API         APIConfig          `yaml:"api"`
	Store       StoreConfig        `yaml:"store"`
	Server      ServerConfig       `yaml:"server"`
	Log         LogConfig          `yaml:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// APIConfig controls the simulated API or the remote server used by clients
type APIConfig struct {
	// Delay is the simulated network latency. Nil means DefaultAPIDelay.
	Delay *time.Duration `yaml:"delay,omitempty"`
	// FailureRate is the probability (0..1) that a list fetch fails. Nil means DefaultFailureRate.
	FailureRate *float64 `yaml:"failure_rate,omitempty"`
	// URL points clients at a running `trackr serve` instead of the local stub
	URL string `yaml:"url,omitempty"`
}

// DelayOrDefault returns the configured delay
func (a APIConfig) DelayOrDefault() time.Duration {
	if a.Delay == nil {
		return DefaultAPIDelay
	}
	return *a.Delay
}

// FailureRateOrDefault returns the configured failure rate
func (a APIConfig) FailureRateOrDefault() float64 {
	if a.FailureRate == nil {
		return DefaultFailureRate
	}
	return *a.FailureRate
}

// StoreConfig selects the data store driver
type StoreConfig struct {
	Driver   string `yaml:"driver"`              // "memory" or "sqlite"
	DSN      string `yaml:"dsn,omitempty"`       // sqlite only, defaults to :memory:
	SeedFile string `yaml:"seed_file,omitempty"` // YAML file replacing the built-in mock data
}

// ServerConfig configures `trackr serve`
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// LogConfig configures the slog file logger
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"` // defaults to ~/.trackr/logs/trackr.log
}

// Default returns a config with every default applied
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TRACKR_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TRACKR_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from path, or from the user's config directory when path
// is empty. A missing file yields the defaults. Environment overrides are
// applied last.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = getConfigPath()
		if err != nil {
			path = ""
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// Use defaults
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// Load theme from TRACKR_THEME_FILE if set
	loadThemeFile(config)

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to path, or to the user's config directory when path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return err
		}
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks that loaded values are usable
func (c *Config) Validate() error {
	if d := c.API.DelayOrDefault(); d < 0 {
		return fmt.Errorf("%w: api.delay must not be negative, got %s", ErrInvalidConfig, d)
	}
	if r := c.API.FailureRateOrDefault(); r < 0 || r > 1 {
		return fmt.Errorf("%w: api.failure_rate must be between 0 and 1, got %v", ErrInvalidConfig, r)
	}
	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("%w: store.driver must be memory or sqlite, got %q", ErrInvalidConfig, c.Store.Driver)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// applyEnv overrides file values with TRACKR_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv("TRACKR_API_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: TRACKR_API_DELAY: %v", ErrInvalidConfig, err)
		}
		c.API.Delay = &d
	}
	if v := os.Getenv("TRACKR_API_FAILURE_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: TRACKR_API_FAILURE_RATE: %v", ErrInvalidConfig, err)
		}
		c.API.FailureRate = &r
	}
	if v := os.Getenv("TRACKR_API_URL"); v != "" {
		c.API.URL = v
	}
	if v := os.Getenv("TRACKR_STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("TRACKR_SEED_FILE"); v != "" {
		c.Store.SeedFile = v
	}
	if v := os.Getenv("TRACKR_SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TRACKR_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, defaultConfigDirName, defaultConfigFileName), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", defaultConfigDirName, defaultConfigFileName), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = DefaultStoreDriver
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
