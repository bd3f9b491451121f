package tsp

import (
	"errors"

	"github.com/katalvlaran/tspcompare/geom"
)

// MaxExactCities bounds the instance size accepted by HeldKarp. At n=22 the
// DP table alone is ~415 MB (see ExactTableBytes).
const MaxExactCities = 22

// DefaultRelTol is the relative tolerance used by CompareCost.
const DefaultRelTol = 1e-10

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

var (
	// ErrTooFewCities is returned when an instance is too small for the
	// requested operation (3 for FarthestInsertion, 2 for HeldKarp).
	ErrTooFewCities = geom.ErrTooFewCities

	// ErrTooManyCities is returned when the DP table for HeldKarp would
	// exceed MaxExactCities.
	ErrTooManyCities = errors.New("tsp: too many cities for exact solver")

	// ErrDegenerateHull is returned when the hull collaborator yields fewer
	// than two vertices (e.g. every city at the same point).
	ErrDegenerateHull = errors.New("tsp: degenerate convex hull")

	// ErrInvalidHull is returned when a hull index is out of range or repeated.
	ErrInvalidHull = errors.New("tsp: invalid hull vertex index")

	// ErrInvalidTour is returned when a tour is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the cities")

	// ErrDimensionMismatch is returned for a nil or empty distance matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNonZeroDiagonal is returned when some dist[i][i] is not zero.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self distance")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNonFinite is returned for a NaN or infinite distance.
	ErrNonFinite = errors.New("tsp: non-finite distance")

	// ErrAsymmetry is returned when dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("tsp: distance matrix is not symmetric")
)

// TSResult holds the outcome of the exact solver.
type TSResult struct {
	// Tour visits every city once and starts at city 0; len(Tour) == n.
	// The closing edge back to 0 is implicit.
	Tour []int

	// Cost is the total length of the closed cycle.
	Cost float64
}
