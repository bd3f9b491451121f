package experiment

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// Summary aggregates the records of one group size.
type Summary struct {
	Nodes  int
	Trials int

	// CostMatches counts records with CostEqual; PathMatches those sharing
	// every segment.
	CostMatches int
	PathMatches int

	CostMatchRate float64
	PathMatchRate float64
	MeanSegments  float64

	MeanGap   float64
	MedianGap float64
	P90Gap    float64

	MeanHeuristicTime time.Duration
	MeanExactTime     time.Duration
}

// Summarize groups records by Nodes and returns one Summary per group in
// ascending n. ErrNoRecords if records is empty.
func Summarize(records []Record) ([]Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	groups := make(map[int][]Record)
	for _, rec := range records {
		groups[rec.Nodes] = append(groups[rec.Nodes], rec)
	}
	keys := make([]int, 0, len(groups))
	for n := range groups {
		keys = append(keys, n)
	}
	sort.Ints(keys)

	out := make([]Summary, 0, len(keys))
	for _, n := range keys {
		s, err := summarizeGroup(n, groups[n])
		if err != nil {
			return nil, fmt.Errorf("summarize n=%d: %w", n, err)
		}
		out = append(out, s)
	}

	return out, nil
}

func summarizeGroup(n int, recs []Record) (Summary, error) {
	var (
		s     = Summary{Nodes: n, Trials: len(recs)}
		gaps  = make(stats.Float64Data, len(recs))
		segs  = make(stats.Float64Data, len(recs))
		heur  = make(stats.Float64Data, len(recs))
		exact = make(stats.Float64Data, len(recs))
		err   error
		h, e  float64
	)
	for i, rec := range recs {
		if rec.CostEqual {
			s.CostMatches++
		}
		if rec.Segments == rec.Nodes {
			s.PathMatches++
		}
		gaps[i] = rec.Gap
		segs[i] = float64(rec.Segments)
		heur[i] = float64(rec.HeuristicTime)
		exact[i] = float64(rec.ExactTime)
	}
	s.CostMatchRate = float64(s.CostMatches) / float64(s.Trials)
	s.PathMatchRate = float64(s.PathMatches) / float64(s.Trials)

	if s.MeanSegments, err = stats.Mean(segs); err != nil {
		return s, err
	}
	if s.MeanGap, err = stats.Mean(gaps); err != nil {
		return s, err
	}
	if s.MedianGap, err = stats.Median(gaps); err != nil {
		return s, err
	}
	if s.P90Gap, err = stats.Percentile(gaps, 90); err != nil {
		return s, err
	}
	if h, err = stats.Mean(heur); err != nil {
		return s, err
	}
	if e, err = stats.Mean(exact); err != nil {
		return s, err
	}
	s.MeanHeuristicTime = time.Duration(h)
	s.MeanExactTime = time.Duration(e)

	return s, nil
}
