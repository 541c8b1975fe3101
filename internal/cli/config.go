package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/relaunch/internal/app"
	"github.com/runoshun/relaunch/internal/domain"
	"github.com/runoshun/relaunch/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for config show.
const (
	formatTOML = "toml"
	formatYAML = "yaml"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage the relaunch configuration file.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the configuration file location and the effective configuration
after merging the file over the built-in defaults.

Empty [commands] entries mean the platform defaults are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatTOML && format != formatYAML {
				return fmt.Errorf("%w: %q (use %s or %s)", domain.ErrUnknownFormat, format, formatTOML, formatYAML)
			}

			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			switch {
			case out.ConfigFile.Path == "":
				_, _ = fmt.Fprintln(w, "- (no config directory)")
			case out.ConfigFile.Exists:
				_, _ = fmt.Fprintf(w, "- %s\n", out.ConfigFile.Path)
			default:
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.ConfigFile.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTOML, "Output format: toml or yaml")

	return cmd
}

// formatEffectiveConfig writes cfg in the requested format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config, format string) error {
	switch format {
	case formatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Output configuration template",
		Long: `Output a configuration file template to stdout.

The template uses the built-in defaults and works even if the
existing configuration file is broken.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigTemplateUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigTemplateInput{
				Config: domain.NewDefaultConfig(),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}

	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate configuration file",
		Long: `Generate the configuration file at ~/.config/relaunch/config.toml
($XDG_CONFIG_HOME/relaunch/config.toml when set).

Error conditions:
- Target file already exists: error`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := domain.NewDefaultConfig()
			if target != "" {
				if err := domain.ValidateTargetName(target); err != nil {
					return err
				}
				cfg.Target.Name = target
			}

			uc := c.InitConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{
				Config: cfg,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Application name to write into [target] (default: OneDrive)")

	return cmd
}
