package hull_test

import (
	"testing"

	"github.com/katalvlaran/tspcompare/geom"
	"github.com/katalvlaran/tspcompare/hull"
	"github.com/stretchr/testify/require"
)

func TestVertices_SquareWithInterior(t *testing.T) {
	pts := []geom.City{
		{X: 0.5, Y: 0.5}, // interior
		{X: 1, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: 0.5, Y: 0}, // on an edge, collinear
	}
	got, err := hull.Vertices(pts)
	require.NoError(t, err)
	// CCW from (0,0): (1,0), (1,1), (0,1).
	require.Equal(t, []int{2, 3, 1, 4}, got)
}

func TestVertices_Collinear(t *testing.T) {
	pts := []geom.City{{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 3}}
	got, err := hull.Vertices(pts)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, got)
}

func TestVertices_Degenerate(t *testing.T) {
	_, err := hull.Vertices(nil)
	require.ErrorIs(t, err, hull.ErrNoPoints)

	got, err := hull.Vertices([]geom.City{{X: 4, Y: 2}})
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)

	same := []geom.City{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	got, err = hull.Vertices(same)
	require.NoError(t, err)
	require.Equal(t, []int{0}, got)
}

func TestVertices_DoesNotMutateInput(t *testing.T) {
	pts, err := geom.RandomCities(30, geom.WithSeed(3))
	require.NoError(t, err)
	cp := append([]geom.City(nil), pts...)

	got, err := hull.Vertices(pts)
	require.NoError(t, err)
	require.Equal(t, cp, pts)
	require.GreaterOrEqual(t, len(got), 3)

	// Every consecutive triple turns left.
	n := len(got)
	for i := 0; i < n; i++ {
		o, a, b := pts[got[i]], pts[got[(i+1)%n]], pts[got[(i+2)%n]]
		turn := (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
		require.Greater(t, turn, 0.0)
	}
}
