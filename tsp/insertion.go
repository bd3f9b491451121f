// Package tsp — farthest insertion over a convex-hull seed.
//
// Pipeline:
//  1. Ask the hull collaborator for hull vertex indices (cyclic order).
//  2. Seed the tour with the farthest pair of hull vertices: the first pair
//     (i<j in hull order) attaining the strict maximum distance.
//  3. Until every city is placed, evaluate EVERY (remaining city, tour edge)
//     pair and insert the city with the globally smallest length increase
//     d(c,u) + d(c,v) − d(u,v) right after u.
//
// Step 3 is a cheapest-insertion rule; the routine keeps its historical name.
// Remaining cities are scanned in ascending index order and edges in tour
// order; a strict '<' keeps the first minimum, so ties go to the lowest city
// index and then to the earliest position.
//
// Complexity: O(n) candidates × O(n) edges per insertion ⇒ O(n³) total,
// O(n²) for the precomputed distances.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspcompare/geom"
	"github.com/katalvlaran/tspcompare/hull"
)

// HullFunc returns the indices of the convex-hull vertices of points in
// cyclic order. hull.Vertices is the default implementation.
type HullFunc func(points []geom.City) ([]int, error)

// FarthestInsertion builds a tour over cities using hull.Vertices as the
// hull collaborator. See FarthestInsertionWithHull.
func FarthestInsertion(cities []geom.City) ([]int, error) {
	return FarthestInsertionWithHull(cities, hull.Vertices)
}

// FarthestInsertionWithHull builds a tour (a permutation of 0..n−1) over
// cities, seeding it from the hull reported by hv. A nil hv means
// hull.Vertices.
//
// Errors: ErrTooFewCities (n<3), geom.ErrNonFinite, ErrDegenerateHull
// (fewer than two hull vertices), ErrInvalidHull, or the hull error itself.
func FarthestInsertionWithHull(cities []geom.City, hv HullFunc) ([]int, error) {
	n := len(cities)
	if n < 3 {
		return nil, fmt.Errorf("farthest insertion over %d cities: %w", n, ErrTooFewCities)
	}
	if err := geom.ValidateCities(cities); err != nil {
		return nil, err
	}
	if hv == nil {
		hv = hull.Vertices
	}

	vs, err := hv(cities)
	if err != nil {
		return nil, fmt.Errorf("convex hull: %w", err)
	}
	if len(vs) < 2 {
		return nil, fmt.Errorf("hull of %d vertices: %w", len(vs), ErrDegenerateHull)
	}
	if err = validateHull(vs, n); err != nil {
		return nil, err
	}

	d := flatDistances(cities)
	a, b := farthestPair(vs, d, n)

	return insertAll(d, n, a, b), nil
}

// validateHull checks that every hull index is in range and distinct.
func validateHull(vs []int, n int) error {
	seen := make([]bool, n)
	for _, v := range vs {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("hull vertex %d: %w", v, ErrInvalidHull)
		}
		seen[v] = true
	}

	return nil
}

// flatDistances returns the row-major n×n Euclidean distance table.
func flatDistances(cities []geom.City) []float64 {
	var (
		n    = len(cities)
		d    = make([]float64, n*n)
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = geom.Distance(cities[i], cities[j])
			d[i*n+j] = w
			d[j*n+i] = w
		}
	}

	return d
}

// farthestPair returns the first hull pair (i<j in hull order) with the
// largest distance.
func farthestPair(vs []int, d []float64, n int) (int, int) {
	var (
		best = -1.0
		a, b = vs[0], vs[1]
		i, j int
		w    float64
	)
	for i = 0; i < len(vs); i++ {
		for j = i + 1; j < len(vs); j++ {
			w = d[vs[i]*n+vs[j]]
			if w > best {
				best = w
				a, b = vs[i], vs[j]
			}
		}
	}

	return a, b
}

// insertAll grows the tour [a, b] until it covers all n cities.
func insertAll(d []float64, n, a, b int) []int {
	tour := make([]int, 2, n)
	tour[0], tour[1] = a, b

	placed := make([]bool, n)
	placed[a], placed[b] = true, true

	var city, pos int
	for len(tour) < n {
		city, pos = cheapestInsertion(d, n, tour, placed)

		// Insert city at pos, shifting the tail right by one.
		tour = append(tour, 0)
		copy(tour[pos+1:], tour[pos:])
		tour[pos] = city
		placed[city] = true
	}

	return tour
}

// cheapestInsertion returns the unplaced city whose best slot in tour adds the
// least length, and the position it would occupy. The first minimum wins.
func cheapestInsertion(d []float64, n int, tour []int, placed []bool) (int, int) {
	var (
		best       = math.Inf(1)
		city, pos  = -1, -1
		m          = len(tour)
		c, i, u, v int
		inc        float64
	)
	for c = 0; c < n; c++ {
		if placed[c] {
			continue
		}
		for i = 0; i < m; i++ {
			u = tour[i]
			v = tour[(i+1)%m]
			inc = d[c*n+u] + d[c*n+v] - d[u*n+v]
			if inc < best {
				best, city, pos = inc, c, i+1
			}
		}
	}

	return city, pos
}
