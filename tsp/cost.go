// Package tsp — tour length over coordinates or over a distance matrix.
//
// Both functions sum the n edges of the closed cycle in the same order,
// starting with the closing edge tour[n-1]→tour[0], so that a tour and its
// matrix-based length agree bit-for-bit when the matrix came from
// geom.DistanceMatrix.
package tsp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspcompare/geom"
)

// TourLength returns the length of the closed cycle through cities in tour
// order. tour must be a permutation of 0..len(cities)-1.
//
// Complexity: O(n).
func TourLength(tour []int, cities []geom.City) (float64, error) {
	if err := ValidatePermutation(tour, len(cities)); err != nil {
		return 0, fmt.Errorf("tour of %d cities over %d: %w", len(tour), len(cities), err)
	}

	var (
		sum float64
		n   = len(tour)
		i   int
	)
	for i = 0; i < n; i++ {
		sum += geom.Distance(cities[tour[(i+n-1)%n]], cities[tour[i]])
	}

	return sum, nil
}

// MatrixTourLength returns the length of the closed cycle using dist.
// The matrix is validated like HeldKarp's input.
//
// Complexity: O(n²) validation + O(n) summation.
func MatrixTourLength(dist mat.Matrix, tour []int) (float64, error) {
	n, err := validateDistMatrix(dist, symTol)
	if err != nil {
		return 0, err
	}
	if err = ValidatePermutation(tour, n); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += dist.At(tour[(i+n-1)%n], tour[i])
	}

	return sum, nil
}
