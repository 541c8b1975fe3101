package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Args    []string
}

// NewCommand creates an ExecCommand for program with args.
// Commands run in the current working directory.
func NewCommand(program string, args []string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
	}
}

// Argv returns the program followed by its arguments.
func (c *ExecCommand) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Program)
	return append(argv, c.Args...)
}

// String returns the command line with arguments separated by spaces.
func (c *ExecCommand) String() string {
	return strings.Join(c.Argv(), " ")
}

// CommandResult is the outcome of one external command invocation.
// It lives only as long as it takes to report it.
// Fields are ordered to minimize memory padding.
type CommandResult struct {
	Args     []string // Program followed by its arguments
	Output   []byte   // Captured standard output
	ExitCode int      // Exit status reported by the OS
}

// HasOutput reports whether the command wrote anything to standard output.
func (r *CommandResult) HasOutput() bool {
	return r != nil && len(r.Output) > 0
}

// Text returns the captured output without its trailing line break.
func (r *CommandResult) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimRight(string(r.Output), "\r\n")
}

// Succeeded reports whether the command exited with status 0.
func (r *CommandResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}
