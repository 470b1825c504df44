// Command lineshape evaluates the broadened spectroscopy lineshapes from the
// command line.
//
// Usage:
//
//	lineshape list
//	lineshape info magnon
//	lineshape eval magnon --from -0.5 --to 0.5 --num 101 --param center=0.2 --plot
//	lineshape eval --config run.yaml --csv
//	lineshape guess magnon --data spectrum.csv
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lineshape/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Logger.Error("lineshape failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "lineshape",
		Short:         "broadened spectroscopy lineshapes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.Configure(cmd.ErrOrStderr(), logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error), default $"+logging.EnvLevel)

	root.AddCommand(newListCmd(), newInfoCmd(), newEvalCmd(), newGuessCmd())
	return root
}
