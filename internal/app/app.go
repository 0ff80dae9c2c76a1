// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"radmarkers-core/engine"
	"radmarkers-core/registry"
	"radmarkers-core/segregation"
	"radmarkers-core/tags"
	"radmarkers/internal/cli"
	"radmarkers/internal/cmdutil"
	"radmarkers/internal/export"
	"radmarkers/internal/metrics"
	"radmarkers/internal/output"
	"radmarkers/internal/pipeline"
	"radmarkers/internal/printer"
	"radmarkers/internal/version"
	"radmarkers/internal/writers"
)

// exitError carries the process exit code out of cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error { return &exitError{code: code, err: err} }

// RunContext runs the whole program with argv (without the program name) and
// returns the exit code. Reports go to stdout; diagnostics and progress to
// stderr.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	cmd := newCommand(parent, outw, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(parent)

	var ee *exitError
	switch {
	case err == nil:
		return cmdutil.Finish(outw, stderr, cmdutil.ExitOK)
	case errors.As(err, &ee):
		return cmdutil.Finish(outw, stderr, ee.code)
	default:
		// flag parsing and argument count errors from cobra
		_ = printer.Error(stderr, err.Error(), "Usage: "+cmd.UseLine(), "Run 'radmarkers --help' for all options.")
		return cmdutil.Finish(outw, stderr, cmdutil.ExitUsage)
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newCommand(ctx context.Context, stdout *bufio.Writer, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "radmarkers [flags] <pools-file>",
		Short:         "Cluster RAD tags across individuals and report segregation patterns",
		Long:          cli.Usage,
		Version:       version.Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := cli.Load(viper.New(), cmd.Flags())
			if err == nil {
				err = cli.Validate(opts, writers.Known)
			}
			if err != nil {
				return fail(cmdutil.ExitUsage, printer.Error(stderr, "invalid configuration", err.Error()))
			}
			opts.PoolsFile = args[0]
			return execute(ctx, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("radmarkers version {{.Version}}\n")
	cli.Register(cmd.Flags())
	return cmd
}

// execute runs one clustering job. Nothing is written to stdout unless every
// input was read successfully.
func execute(ctx context.Context, opts cli.Options, stdout io.Writer, stderr io.Writer) error {
	log := cmdutil.NewLogger(stderr, opts.Verbose)
	runID := uuid.NewString()
	log.WithFields(logrus.Fields{"run_id": runID, "pools": opts.PoolsFile}).Info("run started")

	individuals, err := tags.LoadPools(opts.PoolsFile)
	if err != nil {
		return fail(cmdutil.ExitUsage, printer.Error(stderr, "cannot read pools file", err.Error()))
	}
	if len(individuals) == 0 {
		return fail(cmdutil.ExitUsage, printer.Error(stderr, "no individuals",
			fmt.Sprintf("%s lists no individuals.", opts.PoolsFile)))
	}

	metric := tags.MetricFor(opts.Fragments)
	cfg := pipeline.Config{
		Dir:    opts.Directory,
		Suffix: opts.Suffix,
		Filter: tags.NewFilter(opts.Threshold, metric),
	}
	tg, cs := registry.NewTags(), registry.NewClusters()
	eng := engine.New(engine.Config{Hamming: opts.Hamming}, tg, cs)

	res, err := pipeline.Run(ctx, cfg, individuals, eng, log)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return fail(cmdutil.ExitCanceled, err)
	case errors.Is(err, pipeline.ErrUnreadable):
		return fail(cmdutil.ExitUsage, printer.Error(stderr, "cannot read tag file", err.Error(),
			fmt.Sprintf("check --directory (%s)", opts.Directory),
			fmt.Sprintf("check --suffix (%s)", opts.Suffix)))
	case errors.Is(err, tags.ErrMalformedRecord):
		return fail(cmdutil.ExitUsage, printer.Error(stderr, "malformed tag file", err.Error()))
	default:
		return fail(cmdutil.ExitUsage, printer.Error(stderr, "cannot read input", err.Error()))
	}
	log.WithFields(logrus.Fields{
		"clusters":        cs.Len(),
		"ids_allocated":   cs.Allocated(),
		"tags":            tg.Len(),
		"merges":          res.Engine.Merges,
		"absorbed":        res.Engine.Absorbed,
		"hamming_matches": res.Engine.HammingMatches,
	}).Info("clustering done")

	summary := segregation.Summarize(tg, cs, len(individuals), segregation.Options{KeepSingletons: opts.Singletons})
	loci, alleles := summary.Counts()
	log.WithFields(logrus.Fields{
		"loci":               loci,
		"alleles":            alleles,
		"singletons_removed": summary.SingletonsRemoved,
		"clusters_removed":   summary.ClustersRemoved,
	}).Info("summary ready")
	if opts.Verbose {
		if err := output.WriteSummaryTable(stderr, summary); err != nil {
			log.WithError(err).Warn("summary table")
		}
	}

	report := output.Report{
		RunID:         runID,
		Individuals:   individuals,
		Summary:       summary,
		Metric:        metric,
		SNPs:          opts.SNPs,
		Qualities:     opts.Qualities,
		QualityOffset: opts.QualityOffset,
	}
	if err := writers.Write(opts.Format, stdout, report); err != nil {
		if writers.IsBrokenPipe(err) {
			return nil
		}
		return fail(cmdutil.ExitIO, printer.Error(stderr, "cannot write report", err.Error()))
	}

	if opts.SQLite != "" {
		if err := export.WriteSQLite(ctx, opts.SQLite, report); err != nil {
			return fail(cmdutil.ExitIO, printer.Error(stderr, "sqlite export failed", err.Error()))
		}
		log.WithField("path", opts.SQLite).Info("sqlite export written")
	}
	if opts.MetricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(res.Read, res.Engine, summary)
		if err := rec.WriteTextfile(opts.MetricsFile); err != nil {
			return fail(cmdutil.ExitIO, printer.Error(stderr, "cannot write metrics", err.Error()))
		}
	}
	return nil
}
