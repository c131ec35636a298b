package commands

import (
	"context"
	"fmt"
	"log/slog"

	"nockpoint/internal/domain"
)

// ConfigShowCommand reports the effective settings.
type ConfigShowCommand struct {
	configRepo     domain.ConfigRepository
	configProvider domain.ConfigProvider
}

// NewConfigShowCommand creates a new config show command.
func NewConfigShowCommand(configRepo domain.ConfigRepository, configProvider domain.ConfigProvider) *ConfigShowCommand {
	return &ConfigShowCommand{
		configRepo:     configRepo,
		configProvider: configProvider,
	}
}

// ConfigShowResult contains the result of the config show command.
type ConfigShowResult struct {
	Path     string
	Settings domain.Settings
}

// Execute runs the config show command.
func (c *ConfigShowCommand) Execute(ctx context.Context) (*ConfigShowResult, error) {
	settings, err := c.configRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	path, err := c.configProvider.GetConfigPath()
	if err != nil {
		return nil, err
	}
	return &ConfigShowResult{Path: path, Settings: settings}, nil
}

// ConfigSetURLCommand changes the club service URL.
type ConfigSetURLCommand struct {
	configRepo domain.ConfigRepository
	logger     *slog.Logger
}

// NewConfigSetURLCommand creates a new config set-url command.
func NewConfigSetURLCommand(configRepo domain.ConfigRepository, logger *slog.Logger) *ConfigSetURLCommand {
	return &ConfigSetURLCommand{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Execute runs the config set-url command and returns the stored URL.
func (c *ConfigSetURLCommand) Execute(ctx context.Context, apiURL string) (string, error) {
	if err := c.configRepo.SetAPIURL(ctx, apiURL); err != nil {
		return "", err
	}
	settings, err := c.configRepo.GetSettings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}
	c.logger.InfoContext(ctx, "API URL updated", "apiURL", settings.APIURL)
	return settings.APIURL, nil
}
