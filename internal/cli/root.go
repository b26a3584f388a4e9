// Package cli wires the cobra command tree: the interactive page plus the
// scripted add/list/remove/stats/config subcommands.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/spendpad/spendpad/internal/config"
	"github.com/spendpad/spendpad/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger

// configKey carries the loaded *config.Config in the command context.
type configKey struct{}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the root cobra command for the spendpad CLI. Running it
// without a subcommand opens the interactive expense page when stdout is a
// terminal, and prints help otherwise.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:   "spendpad",
		Short: "Track everyday expenses from the terminal",
		Long: "Spendpad records expense entries in a local JSON file and shows\n" +
			"total, current-month, and top-category aggregates over them.",
		Version:      ver,
		SilenceUsage: true,
		Example:      rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			result := setupLogging(cmd, cfg)
			logResult = &result
			logger = logging.ComponentLogger(result.Logger, "cli")

			ctx := logging.WithContext(cmd.Context(), result.Logger)
			ctx = context.WithValue(ctx, configKey{}, cfg)
			cmd.SetContext(ctx)

			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return cmd.Help()
			}
			return runTUI(cmd, args)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(
		NewAddCmd(), NewListCmd(), NewRemoveCmd(),
		NewStatsCmd(), NewTUICmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Open the interactive expense page
  spendpad

  # Record an expense
  spendpad add "Coffee with Ana" --amount 4.80 --category food

  # List all expenses
  spendpad list

  # Show total, current-month, and top-category aggregates
  spendpad stats

  # Delete an expense by id
  spendpad remove 01JMXW0A3V5N8QZK2T7Y4B6C9D

  # Initialize the configuration file
  spendpad config init`

// configFromCmd returns the config loaded by the root PersistentPreRunE,
// falling back to defaults when the command runs outside the normal tree
// (direct RunE invocation in tests).
func configFromCmd(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.New()
}
