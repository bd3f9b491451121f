package tsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspcompare/geom"
)

// HeldKarp solves the TSP exactly on a symmetric distance matrix.
//
// State g(ni, N) is the cheapest way to leave city ni, visit every city of the
// remaining set N ⊆ {1..n−1} exactly once, and return to 0:
//
//	g(ni, ∅) = d(ni, 0)
//	g(ni, N) = min_{nj ∈ N} d(ni, nj) + g(nj, N \ {nj})
//
// The answer is g(0, {1..n−1}). N is an n−1 bit mask where bit c−1 stands for
// city c, so N \ {nj} is always numerically smaller than N and the table is
// filled bottom-up in ascending mask order. The arg-min successor of each
// state is kept alongside its cost and the tour is read back from (0, full).
//
// Ties are broken by the lowest successor index, so the result is fully
// deterministic for a given matrix.
//
// It returns a TSResult whose Tour starts at 0 and has length n.
// Errors: ErrDimensionMismatch, ErrNonSquare, ErrTooFewCities (n<2),
// ErrTooManyCities (n>MaxExactCities), ErrNonZeroDiagonal, ErrNonFinite,
// ErrNegativeWeight, ErrAsymmetry.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func HeldKarp(dist mat.Matrix) (TSResult, error) {
	n, err := validateDistMatrix(dist, symTol)
	if err != nil {
		return TSResult{}, err
	}
	if n > MaxExactCities {
		return TSResult{}, fmt.Errorf("held-karp over %d cities (max %d): %w", n, MaxExactCities, ErrTooManyCities)
	}

	s := newHeldKarp(dist, n)
	s.fill()
	tour := s.reconstruct()

	return TSResult{Tour: tour, Cost: s.cost[s.full*n]}, nil
}

// SolveExact builds the distance matrix for cities and runs HeldKarp.
func SolveExact(cities []geom.City) (TSResult, error) {
	m, err := geom.DistanceMatrix(cities)
	if err != nil {
		return TSResult{}, err
	}

	return HeldKarp(m)
}

// ExactTableBytes is the memory held by the DP table for n cities.
func ExactTableBytes(n int) uint64 {
	if n < 2 {
		return 0
	}
	states := uint64(n) << uint(n-1)

	return states * (8 + 1) // float64 cost + int8 successor
}

// heldKarp owns the DP table for a single solve. Nothing outlives the call.
type heldKarp struct {
	n    int
	full int       // mask with all n-1 city bits set
	d    []float64 // row-major copy of the distance matrix
	cost []float64 // cost[mask*n+ni] = g(ni, mask)
	next []int8    // arg-min successor; -1 where g(ni, ∅) or unreachable
}

func newHeldKarp(dist mat.Matrix, n int) *heldKarp {
	var (
		states = n << uint(n-1)
		s      = &heldKarp{
			n:    n,
			full: 1<<uint(n-1) - 1,
			d:    make([]float64, n*n),
			cost: make([]float64, states),
			next: make([]int8, states),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			s.d[i*n+j] = dist.At(i, j)
		}
	}
	for i = range s.next {
		s.next[i] = -1
	}

	return s
}

// fill evaluates every reachable state (ni, mask) with ni ∉ mask. City 0 only
// appears as the current city of the full mask.
func (s *heldKarp) fill() {
	var (
		n          = s.n
		mask, bit  int
		ni, nj     int
		arg        int
		best, cand float64
		row        int
	)
	for mask = 0; mask <= s.full; mask++ {
		for ni = 0; ni < n; ni++ {
			if ni == 0 {
				if mask != s.full {
					continue
				}
			} else if mask&(1<<uint(ni-1)) != 0 {
				continue
			}

			row = ni * n
			if mask == 0 {
				s.cost[ni] = s.d[row] // back to city 0
				continue
			}

			best, arg = math.Inf(1), -1
			for nj = 1; nj < n; nj++ {
				bit = 1 << uint(nj-1)
				if mask&bit == 0 {
					continue
				}
				cand = s.d[row+nj] + s.cost[(mask^bit)*n+nj]
				if cand < best {
					best, arg = cand, nj
				}
			}
			s.cost[mask*n+ni] = best
			s.next[mask*n+ni] = int8(arg)
		}
	}
}

// reconstruct walks successors from (0, full). Every state on that walk was
// filled by construction; a missing one means the table is corrupt.
func (s *heldKarp) reconstruct() []int {
	var (
		tour = make([]int, 1, s.n)
		ni   = 0
		mask = s.full
		nj   int
	)
	for mask != 0 {
		nj = int(s.next[mask*s.n+ni])
		if nj < 1 || mask&(1<<uint(nj-1)) == 0 {
			panic(fmt.Sprintf("tsp: held-karp state (city %d, remaining %b) has no valid successor", ni, mask))
		}
		tour = append(tour, nj)
		mask ^= 1 << uint(nj-1)
		ni = nj
	}

	return tour
}
