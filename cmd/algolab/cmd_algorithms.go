package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algolab/fibonacci"
	"github.com/katalvlaran/algolab/search"
	"github.com/katalvlaran/algolab/sorting"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		variant string
		trace   bool
	)
	cmd := &cobra.Command{
		Use:   "search TARGET VALUES...",
		Short: "Find TARGET in VALUES (binary variants expect sorted input)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := search.ParseVariant(variant)
			if err != nil {
				return err
			}
			seq, family := parseValues(args[1:])
			target := parseTarget(args[0], family)

			var opts []search.Option
			if trace {
				opts = append(opts, search.WithOnProbe(func(lo, mid, hi int) {
					fmt.Fprintf(cmd.OutOrStdout(), "probe low=%d mid=%d high=%d\n", lo, mid, hi)
				}))
			}
			a.logger.Debug("searching",
				zap.Stringer("variant", v),
				zap.Int("values", len(args)-1),
				zap.Stringer("family", family))

			idx, err := search.Values(seq, target, v, opts...)
			if err != nil {
				return err
			}
			if idx == search.NotFound {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "index %d\n", idx)
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "binary", "binary, recursive or linear")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every bisection probe")

	return cmd
}

func (a *app) sortCmd() *cobra.Command {
	var (
		earlyExit bool
		stats     bool
	)
	cmd := &cobra.Command{
		Use:   "sort VALUES...",
		Short: "Bubble sort VALUES",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, _ := parseValues(args)

			var compares, swaps int
			opts := []sorting.Option{
				sorting.WithOnCompare(func(int, int) { compares++ }),
				sorting.WithOnSwap(func(int, int) { swaps++ }),
			}
			if earlyExit {
				opts = append(opts, sorting.WithEarlyExit())
			}
			out, err := sorting.Values(seq, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			if stats {
				fmt.Fprintf(cmd.OutOrStdout(), "compares %d swaps %d\n", compares, swaps)
			}
			a.logger.Debug("sorted", zap.Int("compares", compares), zap.Int("swaps", swaps))
			return nil
		},
	}
	cmd.Flags().BoolVar(&earlyExit, "early-exit", false, "stop after a pass without swaps")
	cmd.Flags().BoolVar(&stats, "stats", false, "print comparison and swap counts")

	return cmd
}

func (a *app) fibCmd() *cobra.Command {
	var (
		variant  string
		sequence bool
	)
	strategies := map[string]func(int) (int64, error){
		"naive":     fibonacci.Naive,
		"iterative": fibonacci.Iterative,
		"memo":      fibonacci.Memoized,
		"table":     fibonacci.Tabulated,
	}
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Compute the N-th Fibonacci number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("fib: N must be an integer: %w", err)
			}
			if sequence {
				seq, err := fibonacci.Sequence(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), seq)
				return nil
			}
			fn, ok := strategies[variant]
			if !ok {
				return fmt.Errorf("fib: unknown variant %q (naive, iterative, memo, table)", variant)
			}
			v, err := fn(n)
			if err != nil {
				return err
			}
			a.logger.Debug("fibonacci", zap.String("variant", variant), zap.Int("n", n),
				zap.Uint64("naive_calls", fibonacci.NaiveCalls(n)))
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "iterative", "naive, iterative, memo or table")
	cmd.Flags().BoolVar(&sequence, "sequence", false, "print the first N terms instead")

	return cmd
}
