package domain

import (
	"context"
	"io"
)

// ProcessController terminates and launches applications by name.
// Both calls block until the underlying OS command returns.
type ProcessController interface {
	// TerminateByName kills every running instance of the named process.
	// It does not wait for the processes to exit.
	TerminateByName(ctx context.Context, name string) (*CommandResult, error)

	// LaunchByName starts (or brings to the foreground) the named application.
	LaunchByName(ctx context.Context, name string) (*CommandResult, error)
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Run executes cmd, captures its standard output and copies its
	// standard error to stderr. A non-zero exit status is reported in the
	// result; an error means the command could not be run at all.
	Run(ctx context.Context, cmd *ExecCommand, stderr io.Writer) (*CommandResult, error)
}

// Reporter narrates progress to the user.
type Reporter interface {
	// Separator prints a horizontal rule.
	Separator()

	// Notice prints a status line.
	Notice(msg string)

	// Echo prints captured command output verbatim.
	Echo(text string)
}

// Logger writes diagnostic entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration file merged over the defaults.
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// GetConfigInfo returns information about the configuration file.
	GetConfigInfo() ConfigInfo

	// InitConfig creates the configuration file from the template.
	InitConfig(cfg *Config) error
}

// ConfigInfo contains information about a configuration file.
type ConfigInfo struct {
	Path    string // Absolute path to the file
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}
