// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/runoshun/relaunch/internal/domain"
	"github.com/runoshun/relaunch/internal/infra/config"
	"github.com/runoshun/relaunch/internal/infra/console"
	"github.com/runoshun/relaunch/internal/infra/executor"
	"github.com/runoshun/relaunch/internal/infra/logging"
	"github.com/runoshun/relaunch/internal/infra/process"
	"github.com/runoshun/relaunch/internal/usecase"
)

// Config holds the application directories.
type Config struct {
	ConfigDir string // Directory holding config.toml
	StateDir  string // Directory holding logs
}

// newConfig creates a new Config from the user's XDG directories.
func newConfig() Config {
	return Config{
		ConfigDir: config.DefaultConfigDir(),
		StateDir:  config.DefaultStateDir(),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Executor      domain.CommandExecutor
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the current user.
func New() *Container {
	cfg := newConfig()

	configLoader := config.NewLoaderWithDir(cfg.ConfigDir)

	// Log level comes from the config file; a broken file is reported
	// by the command that loads it, so fall back to the default here.
	level := domain.DefaultLogLevel
	if appConfig, err := configLoader.Load(); err == nil {
		level = appConfig.Log.Level
	}
	logger := logging.New(cfg.StateDir, logging.ParseLevel(level))

	return &Container{
		Executor:      executor.NewClient(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithDir(cfg.ConfigDir),
		Logger:        logger,
		Config:        cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	exec domain.CommandExecutor,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
	logger domain.Logger,
) *Container {
	return &Container{
		Executor:      exec,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container's ports.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// RestartProcessUseCase returns a new RestartProcess use case.
// Narration goes to stdout; standard error of the OS commands goes to stderr.
func (c *Container) RestartProcessUseCase(commands domain.CommandsConfig, stdout, stderr io.Writer) *usecase.RestartProcess {
	controller := process.NewController(c.Executor, process.CommandSetFromConfig(commands), stderr)
	return usecase.NewRestartProcess(controller, console.NewReporter(stdout), c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
