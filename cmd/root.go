package cmd

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "llvis",
		Short: "Step through singly-linked-list operations",
		Long: `llvis runs singly-linked-list operations (pushFront, pushBack, insertAt,
popFront, popBack, deleteAt, search, reverse) and prints the list after each
step together with a log of what happened.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			stdr.SetVerbosity(verbosity)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "Log verbosity; 1 logs every operation to stderr.")

	rootCmd.AddCommand(newRunCmd(newLogger))
	return rootCmd
}

func newLogger() logr.Logger {
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("llvis")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
