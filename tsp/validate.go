// Package tsp — distance matrix validation for the exact solver.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n²) worst case, no allocations.
package tsp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n ≥ 2,
//   - |a_ii| ≤ tol,
//   - every entry finite and non-negative,
//   - |a_ij − a_ji| ≤ tol.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist mat.Matrix, tol float64) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}
	nr, nc := dist.Dims()
	if nr == 0 || nc == 0 {
		return 0, ErrDimensionMismatch
	}
	if nr != nc {
		return 0, ErrNonSquare
	}
	if nr < 2 {
		return 0, ErrTooFewCities
	}
	n := nr

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aij = dist.At(i, j)
			if math.IsNaN(aij) || math.IsInf(aij, 0) {
				return 0, ErrNonFinite
			}
			if i == j {
				if math.Abs(aij) > tol {
					return 0, ErrNonZeroDiagonal
				}
				continue
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}

	// Symmetric matrices need no pairwise check.
	if _, ok := dist.(mat.Symmetric); ok {
		return n, nil
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij = dist.At(i, j)
			aji = dist.At(j, i)
			if math.Abs(aij-aji) > tol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
