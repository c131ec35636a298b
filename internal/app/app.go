package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"nockpoint/internal/domain"
	"nockpoint/internal/logging"
)

// App contains all application dependencies.
type App struct {
	// Core configuration dependencies (always needed)
	ConfigRepo     domain.ConfigRepository
	ConfigProvider domain.ConfigProvider
	Settings       domain.Settings

	// Session and club services
	Session   domain.SessionManager
	Club      domain.ClubAPI
	Dashboard domain.DashboardLoader

	// File operations (needed by multiple commands)
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	PasswordReader domain.PasswordReader

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config

	stopWatch func()
	closeOnce sync.Once
}

// Config holds application configuration.
type Config struct {
	LogLevel  logging.LogLevel
	LogFormat string
	LogOutput io.Writer
	Verbose   bool

	// APIURL overrides the configured service URL when set.
	APIURL string
	// ConfigPath overrides the default config file location when set.
	ConfigPath string
	// CredentialsDir overrides where the session is stored when set.
	CredentialsDir string

	Version string
	Stdin   io.Reader
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level logging.LogLevel) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = logging.LevelDebug
		}
	}
}

// WithLogFormat selects "text" or "json" log output.
func WithLogFormat(format string) Option {
	return func(cfg *Config) {
		cfg.LogFormat = format
	}
}

// WithLogOutput redirects log output.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithAPIURL overrides the configured club service URL.
func WithAPIURL(apiURL string) Option {
	return func(cfg *Config) {
		cfg.APIURL = apiURL
	}
}

// WithConfigPath overrides the config file location.
func WithConfigPath(path string) Option {
	return func(cfg *Config) {
		cfg.ConfigPath = path
	}
}

// WithCredentialsDir overrides where the session is persisted.
func WithCredentialsDir(dir string) Option {
	return func(cfg *Config) {
		cfg.CredentialsDir = dir
	}
}

// WithVersion sets the build version reported in the User-Agent.
func WithVersion(version string) Option {
	return func(cfg *Config) {
		cfg.Version = version
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel:  logging.LevelWarn,
		LogFormat: "text",
		LogOutput: os.Stderr,
		Version:   "dev",
		Stdin:     os.Stdin,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}

// Close stops background session observers.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		if a.stopWatch != nil {
			a.stopWatch()
		}
	})
}
