package experiment

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tspcompare/geom"
	"github.com/katalvlaran/tspcompare/tsp"
)

// Record is the outcome of comparing both solvers on one instance.
type Record struct {
	RunID string
	Nodes int
	Trial int
	Seed  int64

	HeuristicCost float64
	ExactCost     float64
	// Gap is (HeuristicCost − ExactCost) / ExactCost; 0 when ExactCost is 0.
	Gap       float64
	CostEqual bool
	Segments  int

	HeuristicTime time.Duration
	ExactTime     time.Duration
}

// Optimal reports whether the heuristic found an optimal tour by both
// measures: same cost and every segment shared.
func (r Record) Optimal() bool {
	return r.CostEqual && r.Segments == r.Nodes
}

// Outcome carries the tours behind a Record, for plotting.
type Outcome struct {
	Cities []geom.City
	// Heuristic is rotated to start at city 0, like Exact.Tour.
	Heuristic []int
	Exact     tsp.TSResult
	Record    Record
}

// CompareAlgo compares both solvers on cities with tsp.DefaultRelTol.
func CompareAlgo(cities []geom.City) (Record, error) {
	o, err := Compare(cities, tsp.DefaultRelTol)
	if err != nil {
		return Record{}, err
	}

	return o.Record, nil
}

// Compare runs tsp.FarthestInsertion and tsp.SolveExact on cities and judges
// the heuristic tour against the optimum. Only Nodes and the measured fields
// of the Record are set; run bookkeeping is left to the caller.
func Compare(cities []geom.City, relTol float64) (Outcome, error) {
	var (
		out   Outcome
		start time.Time
		heur  []int
		err   error
	)
	out.Cities = cities
	out.Record.Nodes = len(cities)

	start = time.Now()
	heur, err = tsp.FarthestInsertion(cities)
	out.Record.HeuristicTime = time.Since(start)
	if err != nil {
		return out, fmt.Errorf("farthest insertion: %w", err)
	}
	if out.Heuristic, err = tsp.RotateTourToStart(heur, 0); err != nil {
		return out, fmt.Errorf("farthest insertion: %w", err)
	}

	start = time.Now()
	out.Exact, err = tsp.SolveExact(cities)
	out.Record.ExactTime = time.Since(start)
	if err != nil {
		return out, fmt.Errorf("held-karp: %w", err)
	}

	if out.Record.HeuristicCost, err = tsp.TourLength(out.Heuristic, cities); err != nil {
		return out, err
	}
	out.Record.ExactCost = out.Exact.Cost
	if out.Exact.Cost > 0 {
		out.Record.Gap = (out.Record.HeuristicCost - out.Exact.Cost) / out.Exact.Cost
	}
	if out.Record.CostEqual, err = tsp.CompareCostTol(out.Heuristic, out.Exact.Tour, cities, relTol); err != nil {
		return out, err
	}
	out.Record.Segments = tsp.ComparePath(out.Heuristic, out.Exact.Tour, cities)

	return out, nil
}
