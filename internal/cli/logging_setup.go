package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendpad/spendpad/internal/config"
	"github.com/spendpad/spendpad/internal/logging"
)

// setupLogging builds the application logger from the config file after
// applying CLI flag overrides. --debug forces verbose console output to
// stderr regardless of any configured log file.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.Result {
	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	result := logging.New(logCfg)
	if result.FallbackReason != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: logging to stderr instead of file: %s\n", result.FallbackReason)
	}
	return result
}
