package report_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspcompare/experiment"
	"github.com/katalvlaran/tspcompare/report"
)

func TestSQLiteSink_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	db, err := report.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	want := append(sampleRecords(5), sampleRecords(6)...)
	require.NoError(t, db.Write(want[:3]))
	require.NoError(t, db.Write(want[3:]))

	got, err := db.Records(want[0].RunID)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Same key twice violates the primary key and rolls the batch back.
	require.Error(t, db.Write(want[:1]))
	got, err = db.Records(want[0].RunID)
	require.NoError(t, err)
	require.Len(t, got, 6)
}

func TestSQLiteSink_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	db, err := report.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Write(sampleRecords(4)))
	require.NoError(t, db.Close())

	db, err = report.OpenSQLite(path)
	require.NoError(t, err)
	defer db.Close()

	runs, err := db.Runs()
	require.NoError(t, err)
	require.Equal(t, []string{sampleRecords(4)[0].RunID}, runs)
}

// TestSQLiteSink_WithRunner stores a small real batch in both sinks.
func TestSQLiteSink_WithRunner(t *testing.T) {
	dir := t.TempDir()
	db, err := report.OpenSQLite(filepath.Join(dir, "results.db"))
	require.NoError(t, err)
	defer db.Close()
	csvPath := filepath.Join(dir, "results.csv")

	cfg := experiment.DefaultConfig()
	cfg.MinNodes, cfg.MaxNodes, cfg.Trials, cfg.Workers = 4, 5, 4, 2
	r, err := experiment.NewRunner(cfg,
		experiment.WithSink(experiment.MultiSink(report.NewCSVSink(csvPath), db)))
	require.NoError(t, err)

	recs, err := r.Run(context.Background())
	require.NoError(t, err)

	stored, err := db.Records(r.RunID())
	require.NoError(t, err)
	require.Equal(t, recs, stored)

	fromCSV, err := report.ReadCSV(csvPath)
	require.NoError(t, err)
	require.Equal(t, recs, fromCSV)
}
