// Command tspcompare measures how often farthest insertion finds the optimal
// tour on random Euclidean instances.
//
// Batch mode (default) compares Trials random instances for every group size
// in [min, max] and appends the records to a CSV file and, optionally, a
// SQLite database:
//
//	tspcompare -config run.yaml -min 4 -max 9 -trials 50 -workers 8 -csv out.csv -sqlite out.db
//
// Visual mode solves one instance and writes a PNG of each tour:
//
//	tspcompare -visual 10 -plot-dir plots
//
// Summary mode prints per-group statistics of an existing CSV file:
//
//	tspcompare -summarize out.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/tspcompare/experiment"
	"github.com/katalvlaran/tspcompare/geom"
	"github.com/katalvlaran/tspcompare/report"
	"github.com/katalvlaran/tspcompare/tsp"
)

// options holds the parsed command line.
type options struct {
	configPath string
	cfg        experiment.Config

	visual    int
	plotDir   string
	summarize string
	quiet     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	switch {
	case opts.summarize != "":
		recs, err := report.ReadCSV(opts.summarize)
		if err != nil {
			return err
		}
		return printSummary(stdout, recs)
	case opts.visual > 0:
		return runVisual(stdout, opts)
	default:
		return runBatch(ctx, stdout, opts)
	}
}

// parseFlags loads the config file (if any) and then applies every flag the
// user set explicitly on top of it.
func parseFlags(args []string) (options, error) {
	var (
		opts     options
		fs       = flag.NewFlagSet("tspcompare", flag.ContinueOnError)
		def      = experiment.DefaultConfig()
		minNodes = fs.Int("min", def.MinNodes, "Smallest group size")
		maxNodes = fs.Int("max", def.MaxNodes, "Largest group size")
		trials   = fs.Int("trials", def.Trials, "Instances per group")
		workers  = fs.Int("workers", def.Workers, "Concurrent comparisons")
		seed     = fs.Int64("seed", def.Seed, "Base seed of the run")
		csvPath  = fs.String("csv", def.CSVPath, "CSV file to append results to (empty to disable)")
		fallback = fs.String("fallback-dir", def.FallbackDir, "Directory for timestamped CSV files when the main one fails")
		dbPath   = fs.String("sqlite", def.SQLitePath, "SQLite database for results (empty to disable)")
	)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.IntVar(&opts.visual, "visual", 0, "Solve one instance of this many cities and plot both tours")
	fs.StringVar(&opts.plotDir, "plot-dir", ".", "Directory for -visual plots")
	fs.StringVar(&opts.summarize, "summarize", "", "Print per-group statistics of a results CSV and exit")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.cfg = def
	if opts.configPath != "" {
		cfg, err := experiment.LoadConfig(opts.configPath)
		if err != nil {
			return opts, fmt.Errorf("load config: %w", err)
		}
		opts.cfg = cfg
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min":
			opts.cfg.MinNodes = *minNodes
		case "max":
			opts.cfg.MaxNodes = *maxNodes
		case "trials":
			opts.cfg.Trials = *trials
		case "workers":
			opts.cfg.Workers = *workers
		case "seed":
			opts.cfg.Seed = *seed
		case "csv":
			opts.cfg.CSVPath = *csvPath
		case "fallback-dir":
			opts.cfg.FallbackDir = *fallback
		case "sqlite":
			opts.cfg.SQLitePath = *dbPath
		}
	})

	return opts, nil
}

func runBatch(ctx context.Context, stdout io.Writer, opts options) error {
	cfg := opts.cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		sinks []experiment.Sink
		csv   *report.CSVSink
	)
	if cfg.CSVPath != "" {
		var csvOpts []report.CSVOption
		if cfg.FallbackDir != "" {
			csvOpts = append(csvOpts, report.WithFallbackDir(cfg.FallbackDir))
		}
		csv = report.NewCSVSink(cfg.CSVPath, csvOpts...)
		sinks = append(sinks, csv)
	}
	if cfg.SQLitePath != "" {
		db, err := report.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return err
		}
		defer db.Close()
		sinks = append(sinks, db)
	}

	runnerOpts := []experiment.RunnerOption{experiment.WithSink(experiment.MultiSink(sinks...))}
	if !opts.quiet {
		runnerOpts = append(runnerOpts, experiment.WithProgress(progressLogger(cfg)))
	}
	r, err := experiment.NewRunner(cfg, runnerOpts...)
	if err != nil {
		return err
	}

	log.Printf("run %s: groups %d..%d, %s instances, %d workers, held-karp table up to %s per instance",
		r.RunID(), cfg.MinNodes, cfg.MaxNodes, humanize.Comma(int64(cfg.Total())), cfg.Workers,
		humanize.IBytes(tsp.ExactTableBytes(cfg.MaxNodes)))

	recs, err := r.Run(ctx)
	if csv != nil && csv.Path() != "" && csv.Path() != cfg.CSVPath {
		log.Printf("could not write %s, results saved to %s instead", cfg.CSVPath, csv.Path())
	}
	if err != nil {
		if len(recs) > 0 {
			log.Printf("stopped after %s records", humanize.Comma(int64(len(recs))))
		}
		return err
	}

	return printSummary(stdout, recs)
}

// progressLogger logs roughly every tenth of the run and at the end.
func progressLogger(cfg experiment.Config) experiment.ProgressFunc {
	step := cfg.Total() / 10
	if step < 1 {
		step = 1
	}
	return func(done, total int) {
		if done%step == 0 || done == total {
			log.Printf("progress: %s/%s (%.0f%%)", humanize.Comma(int64(done)), humanize.Comma(int64(total)),
				100*float64(done)/float64(total))
		}
	}
}

func runVisual(stdout io.Writer, opts options) error {
	cities, err := geom.RandomCities(opts.visual, geom.WithSeed(opts.cfg.Seed))
	if err != nil {
		return err
	}
	o, err := experiment.Compare(cities, opts.cfg.RelTol)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(opts.plotDir, 0o755); err != nil {
		return err
	}

	heurPath := filepath.Join(opts.plotDir, "farthest_insertion.png")
	if err = report.PlotTour(heurPath, "Farthest Insertion", cities, o.Heuristic); err != nil {
		return err
	}
	exactPath := filepath.Join(opts.plotDir, "dynamic_programming.png")
	if err = report.PlotTour(exactPath, "Dynamic Programming", cities, o.Exact.Tour); err != nil {
		return err
	}

	rec := o.Record
	fmt.Fprintf(stdout, "Number of nodes: %d\n", rec.Nodes)
	fmt.Fprintf(stdout, "Farthest insertion: %v cost %.6f (%s)\n", o.Heuristic, rec.HeuristicCost, rec.HeuristicTime)
	fmt.Fprintf(stdout, "Dynamic programming: %v cost %.6f (%s)\n", o.Exact.Tour, rec.ExactCost, rec.ExactTime)
	fmt.Fprintf(stdout, "Same cost: %t\n", rec.CostEqual)
	fmt.Fprintf(stdout, "Same segments: %d\n", rec.Segments)
	fmt.Fprintf(stdout, "Plots: %s, %s\n", heurPath, exactPath)

	return nil
}

func printSummary(w io.Writer, recs []experiment.Record) error {
	sums, err := experiment.Summarize(recs)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "nodes\ttrials\tcost match\tpath match\tmean segments\tmean gap\tmedian gap\tp90 gap\theuristic\texact")
	for _, s := range sums {
		fmt.Fprintf(tw, "%d\t%d\t%.1f%%\t%.1f%%\t%.2f\t%.4f%%\t%.4f%%\t%.4f%%\t%s\t%s\n",
			s.Nodes, s.Trials, 100*s.CostMatchRate, 100*s.PathMatchRate, s.MeanSegments,
			100*s.MeanGap, 100*s.MedianGap, 100*s.P90Gap, s.MeanHeuristicTime, s.MeanExactTime)
	}

	return tw.Flush()
}
