package config

import (
	"fmt"
	"path/filepath"

	"nockpoint/internal/domain"
)

// Provider provides configuration paths.
type Provider struct {
	fs domain.FileSystemAdapter
}

// NewProvider creates a new configuration provider.
func NewProvider(fs domain.FileSystemAdapter) *Provider {
	return &Provider{
		fs: fs,
	}
}

func (p *Provider) baseDir() (string, error) {
	homeDir, err := p.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "nockpoint"), nil
}

// GetConfigPath returns the path to the nockpoint configuration file.
func (p *Provider) GetConfigPath() (string, error) {
	dir, err := p.baseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// GetCredentialsDir returns the directory holding the stored session.
func (p *Provider) GetCredentialsDir() (string, error) {
	dir, err := p.baseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "credentials"), nil
}
