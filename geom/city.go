package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// City is an immutable point in the plane.
type City = r2.Vec

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// DistanceMatrix builds the symmetric n×n matrix of pairwise distances.
// The diagonal is exactly zero and m[i][j] == m[j][i] bit-for-bit, since
// only the upper triangle is computed.
//
// Errors: ErrTooFewCities if len(cities) < 2, ErrNonFinite for NaN/Inf input.
//
// Complexity: O(n²) time and space.
func DistanceMatrix(cities []City) (*mat.SymDense, error) {
	n := len(cities)
	if n < 2 {
		return nil, fmt.Errorf("distance matrix over %d cities: %w", n, ErrTooFewCities)
	}
	if err := ValidateCities(cities); err != nil {
		return nil, err
	}

	m := mat.NewSymDense(n, nil)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.SetSym(i, j, Distance(cities[i], cities[j]))
		}
	}

	return m, nil
}

// ValidateCities rejects NaN and infinite coordinates.
func ValidateCities(cities []City) error {
	for i, c := range cities {
		if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) {
			return fmt.Errorf("city %d (%v, %v): %w", i, c.X, c.Y, ErrNonFinite)
		}
	}

	return nil
}
