package domain

import (
	"context"
	"time"
)

// ConfigRepository manages the persisted client settings.
type ConfigRepository interface {
	GetSettings(ctx context.Context) (Settings, error)
	SetAPIURL(ctx context.Context, apiURL string) error
	SaveConfig(ctx context.Context) error
	LoadConfig(ctx context.Context) error
}

// ConfigProvider provides configuration paths.
type ConfigProvider interface {
	GetConfigPath() (string, error)
	GetCredentialsDir() (string, error)
}

// Settings are the user-editable client settings.
type Settings struct {
	Version            string        `yaml:"version"`
	APIURL             string        `yaml:"api_url"`
	Timeout            time.Duration `yaml:"timeout"`
	RateLimit          float64       `yaml:"rate_limit"`
	RateBurst          int           `yaml:"rate_burst"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
}
