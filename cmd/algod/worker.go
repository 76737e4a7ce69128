package main

import (
	"os"

	"github.com/spf13/cobra"

	// Worker subprocesses reload the plugin set on start.
	_ "github.com/maxslion/algod/pkg/plugins"
	"github.com/maxslion/algod/pkg/worker"
)

// workerCmd is the re-exec entry point for CPU task subprocesses. The parent
// writes the job spec to stdin and reads lifecycle messages from stdout; it
// is not meant to be invoked by hand.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Run a single task as a worker subprocess",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(worker.Run(cmd.Context(), os.Stdin, os.Stdout))
	},
}
