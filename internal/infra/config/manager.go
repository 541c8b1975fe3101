package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/relaunch/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	configDir string // Path to config directory (e.g., ~/.config/relaunch)
}

// NewManagerWithDir creates a new Manager with a custom config directory.
// This is useful for testing.
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir: configDir,
	}
}

// GetConfigInfo returns information about the configuration file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	if m.configDir == "" {
		return domain.ConfigInfo{}
	}
	path := filepath.Join(m.configDir, domain.ConfigFileName)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the configuration file from the template rendered for cfg.
func (m *Manager) InitConfig(cfg *domain.Config) error {
	if m.configDir == "" {
		return domain.ErrNoConfigDir
	}
	path := filepath.Join(m.configDir, domain.ConfigFileName)

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.configDir, 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(cfg)
	return os.WriteFile(path, []byte(content), 0o600)
}
