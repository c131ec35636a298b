package app

import (
	"context"
	"log/slog"
	"os"

	"nockpoint/internal/adapters/filesystem"
	"nockpoint/internal/adapters/terminal"
	"nockpoint/internal/credentials"
	"nockpoint/internal/domain"
	"nockpoint/internal/logging"
	"nockpoint/internal/services/config"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create password reader with environment variable support.
	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	passwordReader := terminal.NewAdapter(stdin, os.Stderr)

	// Create config services.
	configProvider := config.NewProvider(fs)
	configPath := cfg.ConfigPath
	if configPath == "" {
		var err error
		if configPath, err = configProvider.GetConfigPath(); err != nil {
			return nil, err
		}
	}
	configRepo, err := config.NewRepository(fs, configPath, logger)
	if err != nil {
		return nil, err
	}

	settings, err := configRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if cfg.APIURL != "" {
		apiURL, validateErr := config.ValidateAPIURL(cfg.APIURL)
		if validateErr != nil {
			return nil, validateErr
		}
		settings.APIURL = apiURL
	}

	credentialsDir := cfg.CredentialsDir
	if credentialsDir == "" {
		if credentialsDir, err = configProvider.GetCredentialsDir(); err != nil {
			return nil, err
		}
	}
	store := credentials.NewFileStore(fs, credentialsDir, logger)

	// Log configuration details.
	logger.InfoContext(ctx, "Initializing nockpoint with configuration",
		"logLevel", string(cfg.LogLevel),
		"verbose", cfg.Verbose,
		"configPath", configPath,
		"apiURL", settings.APIURL)

	services := NewServiceFactory(logger, cfg.Version).CreateServices(settings, store)

	app := &App{
		ConfigRepo:     configRepo,
		ConfigProvider: configProvider,
		Settings:       settings,
		Session:        services.Session,
		Club:           services.Club,
		Dashboard:      services.Dashboard,
		PasswordReader: passwordReader,
		FileSystem:     fs,
		Logger:         logger,
		Config:         cfg,
	}
	app.stopWatch = watchSession(services.Session, logger)

	return app, nil
}

// watchSession logs every session transition until the returned function is called.
func watchSession(sessionManager domain.SessionManager, logger *slog.Logger) func() {
	updates, cancel := sessionManager.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for state := range updates {
			logger.Debug("Session state", "status", state.Status.String(), "user", state.User.Username)
		}
	}()
	return func() {
		cancel()
		<-done
	}
}
