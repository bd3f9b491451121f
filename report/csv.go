package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/katalvlaran/tspcompare/experiment"
)

// ErrBadRow is returned by ReadCSV for a row that does not parse.
var ErrBadRow = errors.New("report: malformed csv row")

// csvHeader is written once, at the top of a new or empty file.
var csvHeader = []string{
	"run_id", "num_nodes", "trial", "seed",
	"heuristic_cost", "exact_cost", "gap",
	"cost_equal", "segments",
	"heuristic_ns", "exact_ns",
}

// fallbackLayout names fallback files result-YYYYMMDD_HHMMSS.csv.
const fallbackLayout = "20060102_150405"

// CSVOption customizes a CSVSink.
type CSVOption func(*CSVSink)

// WithFallbackDir makes a failed append retry once into a fresh
// result-<timestamp>.csv under dir.
func WithFallbackDir(dir string) CSVOption {
	return func(s *CSVSink) {
		s.fallbackDir = dir
	}
}

// WithClock sets the time source used to name fallback files. Panics on nil.
func WithClock(now func() time.Time) CSVOption {
	if now == nil {
		panic("report: WithClock(nil)")
	}
	return func(s *CSVSink) {
		s.now = now
	}
}

// CSVSink appends records to a CSV file. Safe for concurrent use.
type CSVSink struct {
	path        string
	fallbackDir string
	now         func() time.Time

	mu   sync.Mutex
	last string
}

// NewCSVSink returns a sink appending to path. Nothing is opened until the
// first Write.
func NewCSVSink(path string, opts ...CSVOption) *CSVSink {
	s := &CSVSink{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the file the last successful Write went to.
func (s *CSVSink) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Write appends records to the primary file, or to a fallback file when the
// primary fails and a fallback directory is set.
func (s *CSVSink) Write(records []experiment.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := appendCSV(s.path, records)
	if err == nil {
		s.last = s.path
		return nil
	}
	if s.fallbackDir == "" {
		return err
	}

	alt := filepath.Join(s.fallbackDir, "result-"+s.now().Format(fallbackLayout)+".csv")
	if ferr := appendCSV(alt, records); ferr != nil {
		return errors.Join(err, ferr)
	}
	s.last = alt

	return nil
}

func appendCSV(path string, records []experiment.Record) (err error) {
	info, statErr := os.Stat(path)
	fresh := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if fresh {
		if err = w.Write(csvHeader); err != nil {
			return err
		}
	}
	for _, rec := range records {
		if err = w.Write(encodeRecord(rec)); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func encodeRecord(r experiment.Record) []string {
	return []string{
		r.RunID,
		strconv.Itoa(r.Nodes),
		strconv.Itoa(r.Trial),
		strconv.FormatInt(r.Seed, 10),
		strconv.FormatFloat(r.HeuristicCost, 'g', -1, 64),
		strconv.FormatFloat(r.ExactCost, 'g', -1, 64),
		strconv.FormatFloat(r.Gap, 'g', -1, 64),
		strconv.FormatBool(r.CostEqual),
		strconv.Itoa(r.Segments),
		strconv.FormatInt(int64(r.HeuristicTime), 10),
		strconv.FormatInt(int64(r.ExactTime), 10),
	}
}

// ReadCSV loads every record from a file written by CSVSink. Header rows are
// skipped wherever they appear.
func ReadCSV(path string) ([]experiment.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	var (
		out  []experiment.Record
		row  []string
		rec  experiment.Record
		line int
	)
	for {
		row, err = r.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		line++
		if row[0] == csvHeader[0] {
			continue
		}
		if rec, err = decodeRecord(row); err != nil {
			return out, fmt.Errorf("%s row %d: %w", path, line, err)
		}
		out = append(out, rec)
	}
}

func decodeRecord(row []string) (experiment.Record, error) {
	var (
		rec    = experiment.Record{RunID: row[0]}
		hn, en int64
		errs   []error
		err    error
	)
	keep := func(e error) {
		if e != nil {
			errs = append(errs, e)
		}
	}

	rec.Nodes, err = strconv.Atoi(row[1])
	keep(err)
	rec.Trial, err = strconv.Atoi(row[2])
	keep(err)
	rec.Seed, err = strconv.ParseInt(row[3], 10, 64)
	keep(err)
	rec.HeuristicCost, err = strconv.ParseFloat(row[4], 64)
	keep(err)
	rec.ExactCost, err = strconv.ParseFloat(row[5], 64)
	keep(err)
	rec.Gap, err = strconv.ParseFloat(row[6], 64)
	keep(err)
	rec.CostEqual, err = strconv.ParseBool(row[7])
	keep(err)
	rec.Segments, err = strconv.Atoi(row[8])
	keep(err)
	hn, err = strconv.ParseInt(row[9], 10, 64)
	keep(err)
	en, err = strconv.ParseInt(row[10], 10, 64)
	keep(err)
	rec.HeuristicTime = time.Duration(hn)
	rec.ExactTime = time.Duration(en)

	if len(errs) > 0 {
		return rec, fmt.Errorf("%w: %w", ErrBadRow, errors.Join(errs...))
	}

	return rec, nil
}
