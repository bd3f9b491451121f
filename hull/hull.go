package hull

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tspcompare/geom"
)

// ErrNoPoints is returned for an empty input.
var ErrNoPoints = errors.New("hull: no points")

// cross returns the z-component of (a-o)×(b-o); > 0 for a left turn.
func cross(o, a, b geom.City) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Vertices returns the indices of the hull vertices of points in
// counter-clockwise order. The input slice is not modified.
func Vertices(points []geom.City) ([]int, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	// Sort an index permutation lexicographically by (X, Y, index).
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	// Drop coincident points, keeping the lowest index of each.
	uniq := order[:1]
	for _, idx := range order[1:] {
		if points[idx] != points[uniq[len(uniq)-1]] {
			uniq = append(uniq, idx)
		}
	}
	if len(uniq) < 3 {
		return append([]int(nil), uniq...), nil
	}

	var (
		lower = make([]int, 0, len(uniq))
		upper = make([]int, 0, len(uniq))
		i     int
	)
	for i = 0; i < len(uniq); i++ {
		for len(lower) >= 2 && cross(points[lower[len(lower)-2]], points[lower[len(lower)-1]], points[uniq[i]]) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, uniq[i])
	}
	for i = len(uniq) - 1; i >= 0; i-- {
		for len(upper) >= 2 && cross(points[upper[len(upper)-2]], points[upper[len(upper)-1]], points[uniq[i]]) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, uniq[i])
	}

	// Each chain ends where the other starts.
	out := make([]int, 0, len(lower)+len(upper)-2)
	out = append(out, lower[:len(lower)-1]...)
	out = append(out, upper[:len(upper)-1]...)

	return out, nil
}
