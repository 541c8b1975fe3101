// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/runoshun/relaunch/internal/domain"
)

// DefaultWaitDelay bounds how long Run keeps reading output after the
// command itself has exited. Launchers such as "setsid -f" or "start"
// leave the application holding the output pipe open for its lifetime.
const DefaultWaitDelay = 500 * time.Millisecond

// Client implements domain.CommandExecutor interface.
type Client struct {
	waitDelay time.Duration
}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{waitDelay: DefaultWaitDelay}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Run executes the command, capturing stdout and forwarding stderr.
// A command that starts and exits non-zero is not an error: its status
// is returned in the result. Output written by children that outlive the
// command is collected for at most the client's wait delay.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand, stderr io.Writer) (*domain.CommandResult, error) {
	if cmd == nil || cmd.Program == "" {
		return nil, domain.ErrEmptyCommand
	}

	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	execCmd.WaitDelay = c.waitDelay
	var stdout bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = stderr

	result := &domain.CommandResult{Args: cmd.Argv()}
	err := execCmd.Run()
	result.Output = stdout.Bytes()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if errors.Is(err, exec.ErrWaitDelay) {
		// The command exited cleanly; a detached child still holds its output.
		result.ExitCode = execCmd.ProcessState.ExitCode()
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
