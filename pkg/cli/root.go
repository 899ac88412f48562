// Package cli implements the mitab subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrew-torda/mitab/pkg/common"
	"github.com/andrew-torda/mitab/pkg/config"
	"github.com/andrew-torda/mitab/pkg/metrics"
	"github.com/andrew-torda/mitab/pkg/mitab"
	"github.com/andrew-torda/mitab/pkg/mitabio"
)

// app is shared by all the subcommands. Flags are filled in by cobra,
// cfg, log and met by the root's PersistentPreRunE.
type app struct {
	cfgPath string
	verbose bool
	skip    bool
	workers int
	db      string
	metrics string

	cfg *config.Config
	log *zap.Logger
	met *metrics.Metrics
}

// usageError marks errors where the command line was wrong, rather
// than the data.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// NewRootCmd builds the command tree. Each call gives a fresh tree, so
// tests can run commands without sharing flags.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mitab",
		Short: "Read and check PSI-MI MITAB 2.5 interaction files",
		Long: `mitab reads the tab separated PSI-MI MITAB 2.5 format used by BioGRID,
IntAct and others. It can check a file, print records, count relation
kinds per source database, and load records into SQLite for queries.

Files may be gzip compressed. A file name of "-" means standard input.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "", "YAML config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&a.skip, "skip", "s", false, "skip bad rows instead of stopping at the first")
	pf.IntVarP(&a.workers, "workers", "w", 1, "parse with this many workers, 0 for one per CPU")
	pf.StringVarP(&a.db, "db", "d", "", "database path (default: $"+config.EnvDB+" or ~/.mitab/interactions.db)")
	pf.StringVarP(&a.metrics, "metrics", "m", "", "write counts in prometheus text format to this file")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	root.AddCommand(
		a.checkCmd(),
		a.parseCmd(),
		a.namespacesCmd(),
		a.summaryCmd(),
		a.loadCmd(),
		a.partnersCmd(),
		a.statsCmd(),
	)
	return root
}

// setup reads the config file, lets flags override it, and builds
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("skip") {
		cfg.SkipBadRows = a.skip
	}
	if fl.Changed("workers") {
		cfg.Workers = a.workers
	}
	if fl.Changed("db") {
		cfg.Database = a.db
	}
	if fl.Changed("metrics") {
		cfg.MetricsFile = a.metrics
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return &usageError{err}
	}
	log, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("initialise logger: %w", err)
	}
	a.cfg, a.log, a.met = cfg, log, metrics.New()
	return nil
}

// teardown writes the metrics file, if one was asked for.
func (a *app) teardown(cmd *cobra.Command, args []string) error {
	defer func() { _ = a.log.Sync() }()
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := a.met.WriteTextfile(a.cfg.MetricsFile); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	a.log.Debug("wrote metrics", zap.String("file", a.cfg.MetricsFile))
	return nil
}

// opts gives parser options for this run. Skipped rows are counted
// into nskip, which may be nil, and into the metrics.
func (a *app) opts(nskip *int) *mitab.Options {
	o := a.cfg.Options(a.log)
	o.OnSkip = func(e *mitab.RowError) {
		a.met.Skipped(e)
		if nskip != nil {
			*nskip++
		}
	}
	return o
}

// read parses a whole file.
func (a *app) read(ctx context.Context, fname string, nskip *int) ([]mitab.Record, error) {
	o := a.opts(nskip)
	a.log.Debug("reading", zap.String("file", fname), zap.Int("workers", o.Workers))
	start := time.Now()
	recs, err := mitabio.ReadFile(ctx, fname, o)
	if err != nil {
		return nil, err
	}
	a.met.ReadTime(time.Since(start))
	a.met.Observe(recs)
	a.log.Debug("read", zap.String("file", fname), zap.Int("records", len(recs)),
		zap.Duration("took", time.Since(start)))
	return recs, nil
}

// Execute runs the command line and returns the exit code.
func Execute() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return common.ExitSuccess
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
		return common.ExitUsageError
	}
	return common.ExitFailure
}
