// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCommand builds the qarari command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qarari",
		Short: "Qarari - weigh options against criteria",
		Long: `Qarari rates options against criteria on a 1 to 10 scale and
tells you which one wins and by how much.

The evaluate command scores a decision described in a YAML file without
a server or database.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newEvaluateCommand())

	return cmd
}
