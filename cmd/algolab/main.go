// Command algolab runs the algorithms of this module from the terminal and
// contrasts their costs.
//
//	algolab search 7 1 3 5 7 9 11 13 15
//	algolab sort 64 34 25 12 22 11 90
//	algolab fib --variant naive 25
//	algolab network path --friends ann:ben --friends ben:cai ann cai
//	algolab compare --record
//	algolab history list
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algolab/internal/config"
	"github.com/katalvlaran/algolab/internal/logging"
)

// app carries state shared by every subcommand once the root pre-run has
// loaded configuration and built the logger.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "algolab",
		Short: "algolab - classic interview algorithms with their costs made visible",
		Long: `algolab runs binary and linear search, bubble sort, Fibonacci strategies
and social-graph BFS on your input, and measures how their work grows.

Configuration is read from algolab.yaml (or --config); a missing file
means built-in defaults.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger, err := logging.New(cfg.Logging, a.errOut, a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger.With(zap.String("cmd", cmd.Name()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.searchCmd(),
		a.sortCmd(),
		a.fibCmd(),
		a.networkCmd(),
		a.compareCmd(),
		a.historyCmd(),
	)

	return root
}
