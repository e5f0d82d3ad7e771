package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/algolab/complexity"
	"github.com/katalvlaran/algolab/internal/store"
)

func (a *app) compareCmd() *cobra.Command {
	var (
		sizes   []int
		fibMax  int
		workers int
		record  bool
		dbPath  string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Measure search, sort and Fibonacci work side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Compare
			if cmd.Flags().Changed("sizes") {
				cfg.Sizes = sizes
			}
			if cmd.Flags().Changed("fib-max") {
				cfg.FibMax = fibMax
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			rep, err := complexity.Run(cmd.Context(), cfg, complexity.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := printReport(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if !record {
				return nil
			}

			path := a.cfg.Store.Path
			if dbPath != "" {
				path = dbPath
			}
			st, err := store.Open(cmd.Context(), path)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.SaveReport(cmd.Context(), rep); err != nil {
				return err
			}
			a.logger.Info("report recorded", zap.String("run_id", rep.RunID.String()), zap.String("db", path))
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s\n", rep.RunID)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", nil, "sequence lengths (overrides config)")
	cmd.Flags().IntVar(&fibMax, "fib-max", 0, "largest Fibonacci n (overrides config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent cases (overrides config)")
	cmd.Flags().BoolVar(&record, "record", false, "save the report to the history database")
	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (overrides config)")

	return cmd
}

func (a *app) historyCmd() *cobra.Command {
	var dbPath string
	open := func(cmd *cobra.Command) (*store.Store, error) {
		path := a.cfg.Store.Path
		if dbPath != "" {
			path = dbPath
		}
		return store.Open(cmd.Context(), path)
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded compare reports",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "history database path (overrides config)")

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tSTARTED\tELAPSED\tSIZES\tFIB_MAX")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.RunID, r.StartedAt.Format("2006-01-02 15:04:05"),
					r.FinishedAt.Sub(r.StartedAt), r.SizeCount, r.FibMax)
			}
			return tw.Flush()
		},
	}
	list.Flags().IntVar(&limit, "limit", 20, "maximum runs (0 for all)")

	show := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Print a recorded report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("history: invalid run id %q: %w", args[0], err)
			}
			st, err := open(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			rep, err := st.LoadReport(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), rep)
		},
	}

	cmd.AddCommand(list, show)

	return cmd
}

func printReport(w io.Writer, rep *complexity.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s\n\n", rep.RunID)

	fmt.Fprintln(tw, "SEARCH n\tbinary\trecursive\tlinear")
	for _, c := range rep.Search {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", c.Size, c.BinaryProbes, c.RecursiveProbes, c.LinearProbes)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "SORT n\tcompares\tswaps\tearly-exit compares")
	for _, c := range rep.Sort {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", c.Size, c.Compares, c.Swaps, c.EarlyExitCompares)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "FIB n\tvalue\tnaive calls\titerative steps")
	for _, c := range rep.Fibonacci {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", c.N, c.Value, c.NaiveCalls, c.IterativeSteps)
	}

	return tw.Flush()
}
