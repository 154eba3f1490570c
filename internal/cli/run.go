package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zoobzio/signal/internal/demo"
)

// ErrScenariosFailed is returned when at least one scenario failed.
var ErrScenariosFailed = errors.New("scenarios failed")

var runCmd = &cobra.Command{
	Use:   "run [scenario...]",
	Short: "Run scenarios",
	Long:  "Run the named scenarios, or every scenario when none is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		results, err := demo.Run(out, args...)
		if err != nil {
			return err
		}

		passed := demo.Passed(results)
		fmt.Fprintf(out, "\n%d/%d tests succeeded.\n", passed, len(results))
		if passed != len(results) {
			fmt.Fprintln(out, "FAILURE!")
			return errors.Wrapf(ErrScenariosFailed, "%d of %d", len(results)-passed, len(results))
		}
		fmt.Fprintln(out, "SUCCESS!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
