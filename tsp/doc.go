// Package tsp solves the Euclidean Travelling Salesman Problem two ways and
// compares the answers.
//
//   - FarthestInsertion: construction heuristic seeded with the two farthest
//     convex-hull vertices, then grown by repeatedly inserting the remaining
//     city whose best slot increases the tour length the least (selection is
//     global over all remaining cities and all edges).
//     O(n³) time, O(n²) space.
//   - HeldKarp: exact dynamic programming over (current city, remaining set)
//     states, the remaining set encoded as an n−1 bit mask.
//     O(n²·2ⁿ) time, O(n·2ⁿ) memory; n ≤ MaxExactCities.
//   - CompareCost / ComparePath: judge two tours for cost equivalence under a
//     relative tolerance, and count shared edges in either traversal direction.
//
// A tour is an open permutation of city indices 0..n−1; the edge from the last
// city back to the first is implicit. Every function here is pure and
// single-threaded; independent instances may be solved concurrently.
//
// Errors are package sentinels (see types.go) matched with errors.Is.
package tsp
