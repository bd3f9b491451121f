// Package tsp_test contains validation tests for distance-matrix
// preconditions: strict sentinels and the symmetry tolerance.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tspcompare/tsp"
)

// nearSym returns a 3×3 general matrix whose (1,0) entry is off by delta.
func nearSym(delta float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, 1, 1.5,
		1 + delta, 0, 2,
		1.5, 2, 0,
	})
}

func TestValidate_SymmetryTolerance(t *testing.T) {
	t.Run("|a_ij-a_ji| = 1e-13 → allowed", func(t *testing.T) {
		_, err := tsp.HeldKarp(nearSym(1e-13))
		require.NoError(t, err)
	})

	t.Run("|a_ij-a_ji| = 1e-11 → ErrAsymmetry", func(t *testing.T) {
		_, err := tsp.HeldKarp(nearSym(1e-11))
		require.ErrorIs(t, err, tsp.ErrAsymmetry)
	})
}

func TestValidate_DiagonalTolerance(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1e-13, 1, 1, 0})
	_, err := tsp.HeldKarp(m)
	require.NoError(t, err)

	m.Set(0, 0, 1e-9)
	_, err = tsp.HeldKarp(m)
	require.ErrorIs(t, err, tsp.ErrNonZeroDiagonal)
}

func TestValidate_MatrixTourLength(t *testing.T) {
	_, err := tsp.MatrixTourLength(nearSym(1), []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrAsymmetry)

	_, err = tsp.MatrixTourLength(nearSym(0), []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}
