// Command spendpad is a local expense tracker: an interactive terminal page
// for recording and deleting expenses, with aggregate stats, persisted to a
// JSON file under ~/.spendpad.
package main

import (
	"os"

	"github.com/spendpad/spendpad/internal/cli"
	"github.com/spendpad/spendpad/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to the process exit code.
// Separated from main so tests can exercise it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
