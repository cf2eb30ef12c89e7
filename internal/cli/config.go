package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Davincible/oagen/pkg/config"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or reset the configuration",
		Long: `The configuration file is read from $OAGEN_CONFIG, otherwise from
$XDG_CONFIG_HOME/oagen/config.json or ~/.config/oagen/config.json.
A default file is written on first use.`,
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigInitCommand(),
		newConfigPathCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cm.GetConfig())
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if !force {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration already at %s (use --force to reset)\n", cm.Path())
				return nil
			}

			cm.SetConfig(config.DefaultConfig())
			if err := cm.SaveConfig(); err != nil {
				return err
			}
			successColor.Fprintf(cmd.OutOrStdout(), "✓ Default configuration written to %s\n", cm.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the existing configuration")

	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
