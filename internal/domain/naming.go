package domain

import "path/filepath"

// AppName is the directory name used under the user config and state homes.
const AppName = "relaunch"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// GlobalConfigDir returns the config directory under configHome.
// Format: <configHome>/relaunch
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// StateDir returns the state directory under stateHome.
// Format: <stateHome>/relaunch
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppName)
}

// LogPath returns the path to the log file.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", AppName+".log")
}
