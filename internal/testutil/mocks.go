// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/relaunch/internal/domain"
)

// EventLog records calls made to several doubles in the order they happen.
// Share one EventLog between doubles to assert cross-port ordering.
type EventLog struct {
	Events []string
}

func (l *EventLog) add(format string, args ...any) {
	if l == nil {
		return
	}
	l.Events = append(l.Events, fmt.Sprintf(format, args...))
}

// MockProcessController is a test double for domain.ProcessController.
// Fields are ordered to minimize memory padding.
type MockProcessController struct {
	TerminateResult *domain.CommandResult
	LaunchResult    *domain.CommandResult
	TerminateErr    error
	LaunchErr       error
	Log             *EventLog
	Terminated      []string // Names passed to TerminateByName
	Launched        []string // Names passed to LaunchByName
}

// NewMockProcessController creates a controller whose calls succeed with no output.
func NewMockProcessController() *MockProcessController {
	return &MockProcessController{
		TerminateResult: &domain.CommandResult{},
		LaunchResult:    &domain.CommandResult{},
	}
}

// TerminateByName records the call and returns the configured result.
func (m *MockProcessController) TerminateByName(_ context.Context, name string) (*domain.CommandResult, error) {
	m.Terminated = append(m.Terminated, name)
	m.Log.add("terminate %s", name)
	if m.TerminateErr != nil {
		return nil, m.TerminateErr
	}
	return m.TerminateResult, nil
}

// LaunchByName records the call and returns the configured result.
func (m *MockProcessController) LaunchByName(_ context.Context, name string) (*domain.CommandResult, error) {
	m.Launched = append(m.Launched, name)
	m.Log.add("launch %s", name)
	if m.LaunchErr != nil {
		return nil, m.LaunchErr
	}
	return m.LaunchResult, nil
}

// MockReporter is a test double for domain.Reporter.
// Lines holds the text that would have been printed, one entry per line.
type MockReporter struct {
	Log   *EventLog
	Lines []string
}

// Separator records a separator line.
func (m *MockReporter) Separator() {
	m.Lines = append(m.Lines, domain.Separator)
	m.Log.add("separator")
}

// Notice records a status line.
func (m *MockReporter) Notice(msg string) {
	m.Lines = append(m.Lines, msg)
	m.Log.add("notice %s", msg)
}

// Echo records echoed command output.
func (m *MockReporter) Echo(text string) {
	m.Lines = append(m.Lines, text)
	m.Log.add("echo %s", text)
}

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Results are returned in order; when exhausted an empty result is returned.
type MockCommandExecutor struct {
	Errs     map[string]error // Error to return, keyed by program
	Stderr   io.Writer        // Last stderr writer passed to Run
	Results  []*domain.CommandResult
	Commands []*domain.ExecCommand
}

// NewMockCommandExecutor creates a new MockCommandExecutor.
func NewMockCommandExecutor(results ...*domain.CommandResult) *MockCommandExecutor {
	return &MockCommandExecutor{
		Errs:    make(map[string]error),
		Results: results,
	}
}

// Run records the command and returns the next configured result.
func (m *MockCommandExecutor) Run(_ context.Context, cmd *domain.ExecCommand, stderr io.Writer) (*domain.CommandResult, error) {
	m.Commands = append(m.Commands, cmd)
	m.Stderr = stderr
	if err := m.Errs[cmd.Program]; err != nil {
		return nil, err
	}
	if len(m.Results) == 0 {
		return &domain.CommandResult{Args: cmd.Argv()}, nil
	}
	result := m.Results[0]
	m.Results = m.Results[1:]
	return result, nil
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []string // Formatted as "LEVEL [category] msg"
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

func (m *MockLogger) record(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s [%s] %s", level, category, msg))
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitWith   *domain.Config // Config passed to the last InitConfig call
	ConfigInfo domain.ConfigInfo
	InitCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/relaunch/config.toml",
			Exists: false,
		},
	}
}

// Ensure doubles implement their domain interfaces.
var (
	_ domain.ProcessController = (*MockProcessController)(nil)
	_ domain.Reporter          = (*MockReporter)(nil)
	_ domain.CommandExecutor   = (*MockCommandExecutor)(nil)
	_ domain.Logger            = (*MockLogger)(nil)
	_ domain.ConfigLoader      = (*MockConfigLoader)(nil)
	_ domain.ConfigManager     = (*MockConfigManager)(nil)
)

// GetConfigInfo returns the configured config info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.ConfigInfo
}

// InitConfig records the call and returns the configured error.
func (m *MockConfigManager) InitConfig(cfg *domain.Config) error {
	m.InitCalled = true
	m.InitWith = cfg
	return m.InitErr
}
