package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/urltop/internal/config"
	"github.com/verte-zerg/urltop/internal/lines"
	applog "github.com/verte-zerg/urltop/internal/log"
	"github.com/verte-zerg/urltop/internal/model"
	"github.com/verte-zerg/urltop/internal/report"
	"github.com/verte-zerg/urltop/internal/stats"
	"github.com/verte-zerg/urltop/internal/store"
)

const (
	defaultTop    = 10
	defaultFormat = report.FormatText
	stdioName     = "stdin"
)

type rootOptions struct {
	top        string
	format     string
	record     bool
	verbose    bool
	configPath string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "urltop [-n N] [input-file [output-file]]",
		Short: "Report the most frequent URL domains and paths in text",
		Long: `urltop scans text line by line for http:// and https:// URLs and reports
the most frequent domains and paths.

A URL is recognized at the start of a line or after a space or tab. Input
defaults to stdin and output to stdout.`,
		Args:                  maxArgs(2),
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return argErrorf(cmd, "%v", err)
	})

	rootCmd.Flags().StringVarP(&opts.top, "top", "n", strconv.Itoa(defaultTop), "number of domains and paths to list (>= 1)")
	rootCmd.Flags().StringVar(&opts.format, "format", defaultFormat, "report format: "+strings.Join(report.Formats(), ", "))
	rootCmd.Flags().BoolVar(&opts.record, "record", false, "archive the report in the history database")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", config.DefaultDBPath(), "history database path")

	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func runReport(cmd *cobra.Command, opts *rootOptions, args []string) error {
	fileCfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	applyIntConfig(cmd, "top", &opts.top, fileCfg.Report.Top)
	applyStringConfig(cmd, "format", &opts.format, fileCfg.Report.Format)
	applyBoolConfig(cmd, "record", &opts.record, fileCfg.Report.Record)

	cfg, err := buildConfig(cmd, opts, args)
	if err != nil {
		return err
	}
	logger := applog.New(cmd.ErrOrStderr(), cfg.Verbose)

	var rendered bytes.Buffer
	writer, err := report.New(cfg.Format, &rendered)
	if err != nil {
		return argErrorf(cmd, "%v", err)
	}

	started := time.Now()
	rep, err := scanInput(cmd.InOrStdin(), cfg, logger)
	if err != nil {
		return err
	}
	if err := writer.Write(rep); err != nil {
		return err
	}

	if cfg.Record {
		run := model.Run{StartedAt: started, Source: sourceName(cfg.Input), Limit: cfg.Top, Report: rep}
		if err := recordRun(cmd.Context(), opts.dbPath, run, logger); err != nil {
			return err
		}
	}
	return writeOutput(cmd.OutOrStdout(), cfg.Output, rendered.Bytes())
}

func buildConfig(cmd *cobra.Command, opts *rootOptions, args []string) (model.Config, error) {
	top, err := parseTop(cmd, opts.top)
	if err != nil {
		return model.Config{}, err
	}
	cfg := model.Config{
		Top:     top,
		Format:  opts.format,
		Record:  opts.record,
		Verbose: opts.verbose,
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	return cfg, nil
}

// parseTop accepts base-10 digits only, so "+5", "0x10" and "5x" are rejected.
func parseTop(cmd *cobra.Command, value string) (int, error) {
	n, err := strconv.ParseUint(value, 10, strconv.IntSize-1)
	if err != nil {
		if strings.HasPrefix(value, "-") {
			return 0, argErrorf(cmd, "-n option should not be negative")
		}
		return 0, argErrorf(cmd, "unable to parse int from string %q", value)
	}
	if n < 1 {
		return 0, argErrorf(cmd, "-n option should be at least 1")
	}
	return int(n), nil
}

func scanInput(stdin io.Reader, cfg model.Config, logger *slog.Logger) (model.Report, error) {
	source := sourceName(cfg.Input)
	in, err := lines.Open(cfg.Input, stdin)
	if err != nil {
		return model.Report{}, fmt.Errorf("%w %q: %w", ErrOpenInput, cfg.Input, err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil {
			logger.Warn("failed to close input", "source", source, "error", cerr)
		}
	}()

	started := time.Now()
	agg, err := stats.Collect(in)
	if err != nil {
		return model.Report{}, fmt.Errorf("%w from %s: %w", ErrReadInput, source, err)
	}
	rep := stats.BuildReport(agg, cfg.Top)
	logger.Debug("scan finished",
		"source", source,
		"lines", agg.Lines,
		"urls", rep.TotalURLs,
		"domains", rep.DomainCount,
		"paths", rep.PathCount,
		"elapsed", time.Since(started),
	)
	return rep, nil
}

func recordRun(ctx context.Context, dbPath string, run model.Run, logger *slog.Logger) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrHistory, dbPath, err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close history db", "path", dbPath, "error", cerr)
		}
	}()
	id, err := st.InsertRun(ctx, run)
	if err != nil {
		return fmt.Errorf("%w: record run: %w", ErrHistory, err)
	}
	logger.Debug("run recorded", "id", id, "db", dbPath)
	return nil
}

// writeOutput opens the output only after the report is complete, so a
// failed run leaves an existing output file untouched.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if lines.IsStdio(path) {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrOpenOutput, path, err)
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteOutput, path, err)
	}
	return nil
}

func sourceName(path string) string {
	if lines.IsStdio(path) {
		return stdioName
	}
	return path
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return argErrorf(cmd, "unknown argument %s", args[n])
		}
		return nil
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return argErrorf(cmd, "expected %d argument(s), got %d", n, len(args))
		}
		return nil
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// applyIntConfig stores an integer config value into a string flag target;
// the flag is validated later like any command-line value.
func applyIntConfig(cmd *cobra.Command, name string, target *string, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = strconv.Itoa(*value)
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
