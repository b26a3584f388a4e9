package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(), newConfigPathCmd())
	return cmd
}

// newConfigInitCmd creates the config init command, which writes a config
// file with default values to ~/.spendpad/config.yaml.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.New()

			if !force {
				_, err := os.Stat(cfg.Path())
				if err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", cfg.Path(), err)
				}
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", cfg.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")

	return cmd
}

// newConfigPathCmd creates the config path command, which prints the config
// and data file locations currently in effect.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration and data file paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromCmd(cmd)
			cmd.Printf("config: %s\n", cfg.Path())
			cmd.Printf("data:   %s\n", cfg.DataFile)
			return nil
		},
	}
}
