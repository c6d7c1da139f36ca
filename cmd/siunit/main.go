// Command siunit inspects and checks SI dimensions.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/siunit/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		code := cli.GetExitCode(err)
		// Scenario failures were already reported per scenario.
		if code != cli.ExitFailure {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(code)
	}
}
