// Package process kills and launches applications by name through
// the platform's process-management commands.
package process

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/runoshun/relaunch/internal/domain"
)

// NamePlaceholder is replaced with the target name in command templates.
const NamePlaceholder = "{name}"

// CommandSet holds the command templates for both phases.
// A template is split into words with POSIX shell quoting rules.
type CommandSet struct {
	Terminate string // e.g. "killall {name}"
	Launch    string // e.g. "open -a {name}"
}

// DefaultCommandSet returns the commands for the running platform.
// Both templates are empty on platforms without built-in support.
func DefaultCommandSet() CommandSet {
	return platformCommands()
}

// CommandSetFromConfig returns the platform defaults overridden by
// any templates set in cfg.
func CommandSetFromConfig(cfg domain.CommandsConfig) CommandSet {
	cs := DefaultCommandSet()
	if cfg.Terminate != "" {
		cs.Terminate = cfg.Terminate
	}
	if cfg.Launch != "" {
		cs.Launch = cfg.Launch
	}
	return cs
}

// Controller implements domain.ProcessController by running the
// templates of a CommandSet.
type Controller struct {
	executor domain.CommandExecutor
	stderr   io.Writer
	commands CommandSet
}

// Ensure Controller implements domain.ProcessController interface.
var _ domain.ProcessController = (*Controller)(nil)

// NewController creates a Controller. Standard error of the commands
// is copied to stderr.
func NewController(executor domain.CommandExecutor, commands CommandSet, stderr io.Writer) *Controller {
	return &Controller{
		executor: executor,
		commands: commands,
		stderr:   stderr,
	}
}

// Commands returns the templates the controller runs.
func (c *Controller) Commands() CommandSet {
	return c.commands
}

// TerminateByName runs the terminate command for name.
// Matching zero processes is not an error.
func (c *Controller) TerminateByName(ctx context.Context, name string) (*domain.CommandResult, error) {
	if w := commNameWarning(c.commands.Terminate, name, commNameMax); w != "" && c.stderr != nil {
		_, _ = fmt.Fprintf(c.stderr, "Warning: %s\n", w)
	}
	return c.run(ctx, "terminate", c.commands.Terminate, name)
}

// LaunchByName runs the launch command for name.
func (c *Controller) LaunchByName(ctx context.Context, name string) (*domain.CommandResult, error) {
	return c.run(ctx, "launch", c.commands.Launch, name)
}

func (c *Controller) run(ctx context.Context, phase, tmpl, name string) (*domain.CommandResult, error) {
	if tmpl == "" {
		return nil, fmt.Errorf("%s %s: %w", phase, name, domain.ErrUnsupportedPlatform)
	}
	cmd, err := ExpandTemplate(tmpl, name)
	if err != nil {
		return nil, fmt.Errorf("parse %s command %q: %w", phase, tmpl, err)
	}
	result, err := c.executor.Run(ctx, cmd, c.stderr)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", phase, cmd, err)
	}
	return result, nil
}

// ExpandTemplate splits tmpl into words and replaces every NamePlaceholder
// with name. Substitution happens after splitting, so a name containing
// spaces stays a single argument.
func ExpandTemplate(tmpl, name string) (*domain.ExecCommand, error) {
	words, err := shlex.Split(tmpl)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, domain.ErrEmptyCommand
	}
	for i, w := range words {
		words[i] = strings.ReplaceAll(w, NamePlaceholder, name)
	}
	return domain.NewCommand(words[0], words[1:]), nil
}

// commNameWarning reports a name that "pkill -x" cannot match because the
// kernel truncates process names to limit bytes. A limit of 0 means none.
func commNameWarning(tmpl, name string, limit int) string {
	if limit <= 0 || len(name) <= limit {
		return ""
	}
	words, err := shlex.Split(tmpl)
	if err != nil || len(words) == 0 || filepath.Base(words[0]) != "pkill" || !slices.Contains(words[1:], "-x") {
		return ""
	}
	return fmt.Sprintf("process names are truncated to %d bytes, so %q cannot match \"pkill -x\" (set [commands] terminate, e.g. \"pkill -f {name}\")", limit, name)
}
