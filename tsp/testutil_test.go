// Package tsp_test provides small helpers shared across *_test.go files:
// fixed geometries, a seeded random generator, and a brute-force oracle.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspcompare/geom"
	"github.com/katalvlaran/tspcompare/tsp"
)

const (
	// epsTiny is the tolerance for costs computed in different summation orders.
	epsTiny = 1e-9

	// relTiny bounds the relative drift allowed between two sums of the same edges.
	relTiny = 1e-12
)

// unitSquare returns the corners (0,0),(1,0),(1,1),(0,1); the optimal tour is
// the perimeter with cost 4.
func unitSquare() []geom.City {
	return []geom.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// randomCities draws a seeded instance and fails the test on error.
func randomCities(t testing.TB, n int, seed int64) []geom.City {
	t.Helper()
	cities, err := geom.RandomCities(n, geom.WithSeed(seed))
	require.NoError(t, err)

	return cities
}

// rippledCircle places n cities on a circle with a deterministic radial
// ripple so that no two tours tie.
func rippledCircle(n int) []geom.City {
	var (
		pts   = make([]geom.City, n)
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1 + 0.02*float64((i*5)%7)
		pts[i] = geom.City{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// ringMetric returns d(i,j) = min(|i−j|, n−|i−j|); the optimal cycle costs n.
func ringMetric(n int) *mat.SymDense {
	m := mat.NewSymDense(n, nil)
	var i, j, diff int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			diff = j - i
			if n-diff < diff {
				diff = n - diff
			}
			m.SetSym(i, j, float64(diff))
		}
	}

	return m
}

// bruteForce enumerates every tour fixing city 0 and returns the minimum
// length. Only for n ≤ 9.
func bruteForce(t testing.TB, cities []geom.City) float64 {
	t.Helper()
	n := len(cities)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			l, err := tsp.TourLength(perm, cities)
			require.NoError(t, err)
			if l < best {
				best = l
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(1)

	return best
}
