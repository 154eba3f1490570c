// Command signaldemo runs the scenarios of the signal library and reports
// which ones pass.
package main

import (
	"fmt"
	"os"

	"github.com/zoobzio/signal/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "signaldemo: %v\n", err)
		os.Exit(1)
	}
}
