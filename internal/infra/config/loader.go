// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/relaunch/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	configDir string // Path to config directory (e.g., ~/.config/relaunch)
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(configDir string) *Loader {
	return &Loader{
		configDir: configDir,
	}
}

// DefaultConfigDir returns the default config directory.
// It returns "" when no home directory can be determined.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultStateDir returns the default state directory used for logs.
// It returns "" when no home directory can be determined.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Path returns the path of the configuration file, or "" if unknown.
func (l *Loader) Path() string {
	if l.configDir == "" {
		return ""
	}
	return filepath.Join(l.configDir, domain.ConfigFileName)
}

// Load returns the configuration file merged over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	path := l.Path()
	if path == "" {
		return base, nil
	}

	file, err := l.loadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return mergeConfigs(base, file), nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "target":
			for k, v := range m {
				switch k {
				case "name":
					if s, ok := v.(string); ok {
						res.Target.Name = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [target]: %s", k))
				}
			}
		case "commands":
			for k, v := range m {
				switch k {
				case "terminate":
					if s, ok := v.(string); ok {
						res.Commands.Terminate = s
					}
				case "launch":
					if s, ok := v.(string); ok {
						res.Commands.Launch = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [commands]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Target:   base.Target,
		Commands: base.Commands,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Target.Name != "" {
		result.Target.Name = override.Target.Name
	}
	if override.Commands.Terminate != "" {
		result.Commands.Terminate = override.Commands.Terminate
	}
	if override.Commands.Launch != "" {
		result.Commands.Launch = override.Commands.Launch
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
