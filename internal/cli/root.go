// Package cli implements the signaldemo command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/signal/internal/logging"
)

// logLevel is the global --log-level flag value.
var logLevel string

var rootCmd = &cobra.Command{
	Use:           "signaldemo",
	Short:         "Run signal library scenarios",
	Long:          "signaldemo runs scenarios exercising connections, emissions and disconnection of the signal library.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(cmd.ErrOrStderr(), logging.ParseLevel(logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
