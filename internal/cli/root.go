// Package cli provides the command-line interface for relaunch.
package cli

import (
	"fmt"

	"github.com/runoshun/relaunch/internal/app"
	"github.com/runoshun/relaunch/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for relaunch.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "relaunch",
		Short: "Kill and relaunch an unresponsive application",
		Long: `relaunch restarts a single application that has become unresponsive
or is using too many resources: it kills every running instance of the
application by name, then launches it again.

The application is read from [target] name in the config file
(see "relaunch config show"); it defaults to OneDrive.
relaunch does not wait for the old processes to exit and does not check
that the new instance started.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command itself when it needs the config
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return err
			}

			uc := c.RestartProcessUseCase(cfg.Commands, cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err = uc.Execute(cmd.Context(), usecase.RestartProcessInput{
				Target: cfg.Target.Name,
			})
			return err
		},
	}

	root.AddCommand(newConfigCommand(c))

	return root
}
