package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/urltop/internal/report"
	"github.com/verte-zerg/urltop/internal/store"
)

const defaultHistoryLimit = 20

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List reports archived with --record",
		Args:  maxArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return argErrorf(cmd, "--limit must be >= 0")
			}
			st, err := openHistory(opts.dbPath)
			if err != nil {
				return err
			}
			defer closeHistory(st)

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("%w: list runs: %w", ErrHistory, err)
			}
			return report.WriteHistory(cmd.OutOrStdout(), runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", defaultHistoryLimit, "number of runs to list, 0 lists all")
	cmd.AddCommand(newHistoryShowCmd(opts))
	return cmd
}

func newHistoryShowCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print an archived report",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return argErrorf(cmd, "invalid run id %q", args[0])
			}
			writer, err := report.New(format, cmd.OutOrStdout())
			if err != nil {
				return argErrorf(cmd, "%v", err)
			}
			st, err := openHistory(opts.dbPath)
			if err != nil {
				return err
			}
			defer closeHistory(st)

			run, err := st.GetRun(cmd.Context(), id)
			if err != nil {
				return err
			}
			return writer.Write(run.Report)
		},
	}
	cmd.Flags().StringVar(&format, "format", defaultFormat, "report format")
	return cmd
}

func openHistory(path string) (*store.Store, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrHistory, path, err)
	}
	return st, nil
}

func closeHistory(st *store.Store) {
	if err := st.Close(); err != nil {
		logErrf("failed to close history db: %v\n", err)
	}
}
