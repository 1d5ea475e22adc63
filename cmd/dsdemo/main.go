// Command dsdemo drives the ring queue, the binary tree walks and merge sort from the command line.
package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	verbose bool
	log     *zap.Logger
}

// newRootCommand builds the command tree. If log is nil the logger is built from --verbose.
func newRootCommand(log *zap.Logger) *cobra.Command {
	a := &app{log: log}
	root := &cobra.Command{
		Use:           "dsdemo",
		Short:         "Exercise the ring queue, binary tree walks and merge sort",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				return nil
			}
			l, err := newLogger(a.verbose)
			if err != nil {
				return errors.Wrap(err, "building logger")
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug diagnostics, including every node a search enters")
	root.AddCommand(a.ringCommand(), a.treeCommand(), a.sortCommand())
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zapcfg := zap.NewProductionConfig()
	zapcfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	zapcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapcfg.Encoding = "console"
	zapcfg.Sampling = nil
	if verbose {
		zapcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapcfg.Build()
}

func main() {
	root := newRootCommand(nil)
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
