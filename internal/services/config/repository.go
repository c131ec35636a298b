package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

const (
	dirPermissions  = 0o700 // Owner-only access for security
	filePermissions = 0o600 // Read/write owner only
	configVersion   = "1.0" // Current configuration version

	// DefaultAPIURL is the club service a fresh install talks to.
	DefaultAPIURL = "http://localhost:5000/api"
	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 10 * time.Second
	// DefaultRateLimit and DefaultRateBurst throttle outbound calls.
	DefaultRateLimit = 10
	DefaultRateBurst = 20
)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		Version:   configVersion,
		APIURL:    DefaultAPIURL,
		Timeout:   DefaultTimeout,
		RateLimit: DefaultRateLimit,
		RateBurst: DefaultRateBurst,
	}
}

// Repository handles configuration persistence.
type Repository struct {
	fs         domain.FileSystemAdapter
	configPath string
	settings   domain.Settings
	logger     *slog.Logger
}

// NewRepository creates a new configuration repository.
func NewRepository(
	fs domain.FileSystemAdapter,
	configPath string,
	logger *slog.Logger,
) (*Repository, error) {
	repo := &Repository{
		fs:         fs,
		configPath: configPath,
		settings:   DefaultSettings(),
		logger:     logger,
	}

	configDir := filepath.Dir(configPath)
	if err := fs.MkdirAll(configDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := repo.LoadConfig(context.Background()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Failed to load existing config, starting with defaults", "error", err)
		}
	}

	return repo, nil
}

// GetSettings returns the current settings with defaults filled in.
func (r *Repository) GetSettings(ctx context.Context) (domain.Settings, error) {
	r.logger.DebugContext(ctx, "Getting settings from config", "apiURL", r.settings.APIURL)
	return withDefaults(r.settings), nil
}

// SetAPIURL validates and persists a new service URL.
func (r *Repository) SetAPIURL(ctx context.Context, apiURL string) error {
	normalized, err := ValidateAPIURL(apiURL)
	if err != nil {
		return err
	}

	previous := r.settings.APIURL
	r.settings.APIURL = normalized
	r.logger.InfoContext(ctx, "Updated API URL", "url", normalized)

	if err := r.SaveConfig(ctx); err != nil {
		r.settings.APIURL = previous // Rollback
		return fmt.Errorf("failed to save configuration after updating API URL: %w", err)
	}

	return nil
}

// SaveConfig saves the current configuration to disk.
func (r *Repository) SaveConfig(ctx context.Context) error {
	r.settings.Version = configVersion
	data, err := yaml.Marshal(r.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if writeErr := r.fs.WriteFile(r.configPath, data, filePermissions); writeErr != nil {
		return fmt.Errorf("failed to write configuration file: %w", writeErr)
	}

	r.logger.DebugContext(ctx, "Configuration saved", "path", r.configPath)
	return nil
}

// LoadConfig loads the configuration from disk.
func (r *Repository) LoadConfig(ctx context.Context) error {
	data, err := r.fs.ReadFile(r.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.DebugContext(ctx, "Configuration file does not exist", "path", r.configPath)
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	var settings domain.Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return apperrors.NewConfigurationError("", r.configPath, "failed to unmarshal configuration", unmarshalErr)
	}
	if settings.Version != "" && settings.Version != configVersion {
		return apperrors.NewConfigurationError("version", settings.Version,
			fmt.Sprintf("unsupported configuration version %q", settings.Version), nil)
	}

	r.settings = withDefaults(settings)
	r.logger.DebugContext(ctx, "Configuration loaded",
		"path", r.configPath,
		"version", r.settings.Version,
		"apiURL", r.settings.APIURL)
	return nil
}

// ValidateAPIURL checks that raw is an absolute http(s) URL and returns it
// without a trailing slash.
func ValidateAPIURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return "", apperrors.NewValidationError("api_url", raw, "absolute_url", "api url must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", apperrors.NewValidationError("api_url", raw, "scheme", "api url must use http or https")
	}
	return trimmed, nil
}

func withDefaults(settings domain.Settings) domain.Settings {
	defaults := DefaultSettings()
	if settings.Version == "" {
		settings.Version = defaults.Version
	}
	if settings.APIURL == "" {
		settings.APIURL = defaults.APIURL
	}
	if settings.Timeout <= 0 {
		settings.Timeout = defaults.Timeout
	}
	if settings.RateLimit <= 0 {
		settings.RateLimit = defaults.RateLimit
	}
	if settings.RateBurst <= 0 {
		settings.RateBurst = defaults.RateBurst
	}
	return settings
}
