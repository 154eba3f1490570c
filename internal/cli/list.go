package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/signal/internal/demo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, sc := range demo.Scenarios {
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", sc.Name, sc.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
