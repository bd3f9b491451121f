// Package tsp — tour comparison engine.
//
// Two judgments are offered:
//   - CompareCost: do both tours have the same length within a relative
//     tolerance? Round-off is absorbed; only real differences count.
//   - ComparePath: how many of the n cyclic edges of the first tour are
//     traversed consecutively by the second, in one consistent direction?
//
// ComparePath keeps two counters, one per traversal direction of the second
// tour, each starting at n and dropping by one per edge that fails that
// direction's adjacency test. Adjacency is read off plain positions
// (pos(B) == pos(A)+1), so the edge that wraps around the end of the second
// tour never counts. The best counter is reported, except that n−1 is
// reported as n: two cycles on the same cities cannot share all but one edge,
// and a lone miss can only be that wrap-around edge.
package tsp

import (
	"math"
	"slices"

	"github.com/katalvlaran/tspcompare/geom"
)

// CompareCost reports whether tours a and b over cities have equal length
// within DefaultRelTol. See CompareCostTol.
func CompareCost(a, b []int, cities []geom.City) (bool, error) {
	return CompareCostTol(a, b, cities, DefaultRelTol)
}

// CompareCostTol reports whether |len(a) − len(b)| ≤ relTol·max(|len(a)|, |len(b)|).
// Tours of different lengths are simply unequal (false, nil); a tour that is
// not a permutation of the cities yields ErrInvalidTour.
//
// Complexity: O(n).
func CompareCostTol(a, b []int, cities []geom.City, relTol float64) (bool, error) {
	if len(a) != len(b) {
		return false, nil
	}
	la, err := TourLength(a, cities)
	if err != nil {
		return false, err
	}
	lb, err := TourLength(b, cities)
	if err != nil {
		return false, err
	}

	return isClose(la, lb, relTol), nil
}

// isClose is a relative-tolerance comparison with no absolute floor.
func isClose(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// ComparePath counts the edges of tour a that tour b also traverses, with
// n = len(cities). It returns 0 when the tours differ in length, do not have
// n entries, or a holds a city that b lacks; n when they are identical.
// The result is never n−1.
//
// Complexity: O(n) with a position index of b.
func ComparePath(a, b []int, cities []geom.City) int {
	if len(a) != len(cities) {
		return 0
	}

	return SegmentMatches(a, b)
}

// SegmentMatches is ComparePath with n taken as len(a).
func SegmentMatches(a, b []int) int {
	n := len(a)
	if len(b) != n {
		return 0
	}
	if slices.Equal(a, b) {
		return n
	}

	// First occurrence of each city in b.
	pos := make(map[int]int, n)
	for i, v := range b {
		if _, ok := pos[v]; !ok {
			pos[v] = i
		}
	}

	var (
		clock      = n
		counter    = n
		i          int
		pa, pb     int
		okA, okB   bool
		segA, segB int
	)
	for i = 0; i < n; i++ {
		segA = a[i]
		segB = a[(i+1)%n]
		pa, okA = pos[segA]
		pb, okB = pos[segB]
		if !okA || !okB {
			return 0
		}
		if pa+1 != pb {
			clock--
		}
		if pb+1 != pa {
			counter--
		}
	}

	res := clock
	if counter > res {
		res = counter
	}
	if res == n-1 {
		return n
	}

	return res
}
