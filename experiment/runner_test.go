package experiment_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcompare/experiment"
)

// memorySink keeps every group it is given.
type memorySink struct {
	mu     sync.Mutex
	groups [][]experiment.Record
}

func (m *memorySink) Write(recs []experiment.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups = append(m.groups, append([]experiment.Record(nil), recs...))
	return nil
}

func smallConfig(workers int) experiment.Config {
	cfg := experiment.DefaultConfig()
	cfg.MinNodes, cfg.MaxNodes = 4, 6
	cfg.Trials = 5
	cfg.Workers = workers
	cfg.CSVPath = ""
	return cfg
}

var ignoreTimings = cmpopts.IgnoreFields(experiment.Record{}, "HeuristicTime", "ExactTime")

func TestRunner_Run(t *testing.T) {
	sink := &memorySink{}
	var last, calls int
	r, err := experiment.NewRunner(smallConfig(3),
		experiment.WithSink(sink),
		experiment.WithRunID("run-1"),
		experiment.WithProgress(func(done, total int) {
			calls++
			last = done
			assert.Equal(t, 15, total)
		}),
	)
	require.NoError(t, err)
	require.Equal(t, "run-1", r.RunID())

	recs, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 15)
	require.Equal(t, 15, calls)
	require.Equal(t, 15, last)

	require.Len(t, sink.groups, 3)
	for g, group := range sink.groups {
		require.Len(t, group, 5)
		for trial, rec := range group {
			require.Equal(t, 4+g, rec.Nodes)
			require.Equal(t, trial, rec.Trial)
			require.Equal(t, "run-1", rec.RunID)
			require.Equal(t, experiment.InstanceSeed(experiment.DefaultSeed, rec.Nodes, trial), rec.Seed)
		}
	}
}

func TestRunner_RunGroupProgress(t *testing.T) {
	var totals []int
	var last int
	r, err := experiment.NewRunner(smallConfig(2),
		experiment.WithProgress(func(done, total int) {
			totals = append(totals, total)
			last = done
		}),
	)
	require.NoError(t, err)

	recs, err := r.RunGroup(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recs, 5)
	require.Equal(t, 5, last)
	require.Equal(t, []int{5, 5, 5, 5, 5}, totals)
}

func TestRunner_IndependentOfWorkers(t *testing.T) {
	run := func(workers int) []experiment.Record {
		r, err := experiment.NewRunner(smallConfig(workers), experiment.WithRunID("same"))
		require.NoError(t, err)
		recs, err := r.Run(context.Background())
		require.NoError(t, err)
		return recs
	}

	if diff := cmp.Diff(run(1), run(4), ignoreTimings); diff != "" {
		t.Fatalf("records differ across worker counts (-1 +4):\n%s", diff)
	}
}

func TestRunner_GeneratesRunID(t *testing.T) {
	a, err := experiment.NewRunner(smallConfig(1))
	require.NoError(t, err)
	b, err := experiment.NewRunner(smallConfig(1))
	require.NoError(t, err)
	require.Len(t, a.RunID(), 36)
	require.NotEqual(t, a.RunID(), b.RunID())
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &memorySink{}
	r, err := experiment.NewRunner(smallConfig(2), experiment.WithSink(sink))
	require.NoError(t, err)

	_, err = r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, sink.groups)
}

func TestRunner_SinkError(t *testing.T) {
	boom := errors.New("disk full")
	r, err := experiment.NewRunner(smallConfig(2),
		experiment.WithSink(experiment.SinkFunc(func([]experiment.Record) error { return boom })))
	require.NoError(t, err)

	recs, err := r.Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Empty(t, recs)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := smallConfig(1)
	cfg.Trials = 0
	_, err := experiment.NewRunner(cfg)
	require.ErrorIs(t, err, experiment.ErrInvalidConfig)

	require.Panics(t, func() { experiment.WithSink(nil) })
	require.Panics(t, func() { experiment.WithProgress(nil) })
}

func TestMultiSink(t *testing.T) {
	a, b := &memorySink{}, &memorySink{}
	recs := []experiment.Record{{Nodes: 4}}
	require.NoError(t, experiment.MultiSink(a, b).Write(recs))
	require.Len(t, a.groups, 1)
	require.Len(t, b.groups, 1)
}
