// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/relaunch/internal/domain"
)

const logCategoryRestart = "restart"

// RestartProcessInput contains the parameters for restarting an application.
type RestartProcessInput struct {
	Target string // Name used to find and to launch the application (required)
}

// RestartProcessOutput contains the result of restarting an application.
// Fields are ordered to minimize memory padding.
type RestartProcessOutput struct {
	Terminate *domain.CommandResult // Result of the terminate command
	Launch    *domain.CommandResult // Result of the launch command
	Target    string                // The restarted application
}

// RestartProcess is the use case for killing every instance of an
// application and launching it again.
type RestartProcess struct {
	processes domain.ProcessController
	reporter  domain.Reporter
	logger    domain.Logger
}

// NewRestartProcess creates a new RestartProcess use case.
func NewRestartProcess(
	processes domain.ProcessController,
	reporter domain.Reporter,
	logger domain.Logger,
) *RestartProcess {
	return &RestartProcess{
		processes: processes,
		reporter:  reporter,
		logger:    logger,
	}
}

// Execute restarts the target by:
// 1. Requesting termination of all its instances (without waiting for them to exit)
// 2. Echoing any output of the terminate command
// 3. Requesting launch of the application
// 4. Echoing any output of the launch command
//
// Exit statuses of the OS commands are recorded, not interpreted.
// An error is returned only if a command could not be run; a failed
// terminate returns before launch is attempted.
func (uc *RestartProcess) Execute(ctx context.Context, in RestartProcessInput) (*RestartProcessOutput, error) {
	name := in.Target
	if err := domain.ValidateTargetName(name); err != nil {
		return nil, err
	}

	uc.reporter.Separator()
	uc.reporter.Notice(domain.KillingNotice(name))
	uc.reporter.Separator()

	terminated, err := uc.runPhase(ctx, "terminate", name, uc.processes.TerminateByName)
	if err != nil {
		return nil, err
	}
	uc.reporter.Notice(domain.KilledNotice(name))

	uc.reporter.Separator()
	uc.reporter.Notice(domain.OpeningNotice(name))
	uc.reporter.Separator()

	launched, err := uc.runPhase(ctx, "launch", name, uc.processes.LaunchByName)
	if err != nil {
		return nil, err
	}
	uc.reporter.Notice(domain.OpenedNotice(name))

	return &RestartProcessOutput{
		Target:    name,
		Terminate: terminated,
		Launch:    launched,
	}, nil
}

type phaseFunc func(ctx context.Context, name string) (*domain.CommandResult, error)

// runPhase runs one OS command and echoes its output.
func (uc *RestartProcess) runPhase(ctx context.Context, phase, name string, run phaseFunc) (*domain.CommandResult, error) {
	uc.logger.Debug(logCategoryRestart, fmt.Sprintf("%s %q", phase, name))

	result, err := run(ctx, name)
	if err != nil {
		uc.logger.Error(logCategoryRestart, fmt.Sprintf("%s %q failed: %v", phase, name, err))
		return nil, fmt.Errorf("restart %s: %w", name, err)
	}
	if result == nil {
		result = &domain.CommandResult{}
	}

	if result.HasOutput() {
		uc.reporter.Echo(result.Text())
	}

	msg := fmt.Sprintf("%s %q exited with status %d", phase, name, result.ExitCode)
	if result.Succeeded() {
		uc.logger.Info(logCategoryRestart, msg)
	} else {
		uc.logger.Warn(logCategoryRestart, msg)
	}
	return result, nil
}
