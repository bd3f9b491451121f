// Package tsp — tour utilities shared by the solvers and the comparison engine.
//
// Tours here are OPEN permutations: len(tour) == n and the closing edge
// tour[n-1] → tour[0] is implicit. Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateTourToStart: cyclic shift so the tour begins at a given city.
//   - ReverseTour: the same cycle traversed in the opposite direction.
//   - SameCycle: equality under rotation and reflection.
//   - CopyTour: independent copy.
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh copy of tour shifted so that out[0] == start.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	var (
		n     = len(tour)
		pivot = -1
		i     int
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidTour
	}

	out := make([]int, n)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// ReverseTour returns tour traversed backwards. The first city is kept in
// place so that a tour starting at 0 still starts at 0.
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	n := len(tour)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	out[0] = tour[0]
	for i := 1; i < n; i++ {
		out[i] = tour[n-i]
	}

	return out
}

// SameCycle reports whether a and b describe the same undirected cycle,
// i.e. b equals a up to rotation and/or reversal.
//
// Complexity: O(n) time.
func SameCycle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}

	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p == -1 {
		return false
	}

	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[(p-i+n)%n] {
			backward = false
		}
	}

	return forward || backward
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
