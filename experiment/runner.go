package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tspcompare/geom"
)

// Sink receives the records of one finished group, in trial order.
type Sink interface {
	Write(records []Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(records []Record) error

// Write calls f(records).
func (f SinkFunc) Write(records []Record) error { return f(records) }

// MultiSink writes to every sink in turn and stops at the first error.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(records []Record) error {
		for _, s := range sinks {
			if err := s.Write(records); err != nil {
				return err
			}
		}
		return nil
	})
}

// ProgressFunc is told how many instances are done out of total: the whole
// run for Run, one group for RunGroup. Calls are serialized.
type ProgressFunc func(done, total int)

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithSink sends every finished group to s. Panics on nil.
func WithSink(s Sink) RunnerOption {
	if s == nil {
		panic("experiment: WithSink(nil)")
	}
	return func(r *Runner) {
		r.sink = s
	}
}

// WithProgress installs a progress callback. Panics on nil.
func WithProgress(fn ProgressFunc) RunnerOption {
	if fn == nil {
		panic("experiment: WithProgress(nil)")
	}
	return func(r *Runner) {
		r.progress = fn
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) {
		r.runID = id
	}
}

// Runner executes the batch described by a Config.
type Runner struct {
	cfg      Config
	runID    string
	sink     Sink
	progress ProgressFunc

	mu    sync.Mutex
	done  int
	total int
}

// NewRunner validates cfg and returns a Runner with a fresh random run id.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.runID == "" {
		r.runID = uuid.NewString()
	}

	return r, nil
}

// RunID identifies this run in every Record it produces.
func (r *Runner) RunID() string { return r.runID }

// Run compares every group in ascending n and returns all records. It stops
// at the first failing instance, failing sink write, or cancellation of ctx;
// records of groups already written are returned along with the error.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	r.resetProgress(r.cfg.Total())

	all := make([]Record, 0, r.cfg.Total())
	for n := r.cfg.MinNodes; n <= r.cfg.MaxNodes; n++ {
		recs, err := r.runGroup(ctx, n)
		if err != nil {
			return all, err
		}
		all = append(all, recs...)
	}

	return all, nil
}

// RunGroup compares Config.Trials instances of n cities on at most
// Config.Workers goroutines and hands them to the sink in trial order.
// Progress is counted against Config.Trials.
func (r *Runner) RunGroup(ctx context.Context, n int) ([]Record, error) {
	r.resetProgress(r.cfg.Trials)

	return r.runGroup(ctx, n)
}

func (r *Runner) runGroup(ctx context.Context, n int) ([]Record, error) {
	recs := make([]Record, r.cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for trial := 0; trial < r.cfg.Trials; trial++ {
		if gctx.Err() != nil {
			break
		}
		trial := trial
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := r.instance(n, trial)
			if err != nil {
				return fmt.Errorf("n=%d trial=%d: %w", n, trial, err)
			}
			recs[trial] = rec
			r.tick()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.sink != nil {
		if err := r.sink.Write(recs); err != nil {
			return nil, fmt.Errorf("write group n=%d: %w", n, err)
		}
	}

	return recs, nil
}

// instance draws and compares one instance.
func (r *Runner) instance(n, trial int) (Record, error) {
	seed := InstanceSeed(r.cfg.Seed, n, trial)
	cities, err := geom.RandomCities(n, geom.WithSeed(seed))
	if err != nil {
		return Record{}, err
	}
	o, err := Compare(cities, r.cfg.RelTol)
	if err != nil {
		return Record{}, err
	}
	o.Record.RunID = r.runID
	o.Record.Trial = trial
	o.Record.Seed = seed

	return o.Record, nil
}

func (r *Runner) resetProgress(total int) {
	r.mu.Lock()
	r.done, r.total = 0, total
	r.mu.Unlock()
}

func (r *Runner) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.done++
	if r.progress != nil {
		r.progress(r.done, r.total)
	}
}
