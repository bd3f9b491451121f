// Package geom is the Euclidean distance model shared by the tsp solvers.
//
// A City is a 2-D point (gonum r2.Vec). Cities are identified by their index
// in a fixed, ordered slice; nothing else in the module refers to a city by
// coordinates. The package provides:
//
//   - Distance: straight-line distance between two cities.
//   - DistanceMatrix: the full symmetric n×n matrix (gonum *mat.SymDense).
//   - RandomCities: deterministic uniform instances in [0,1)², configured
//     through functional options (WithSeed, WithRand).
//
// All functions are pure; the returned matrix is owned by the caller and is
// treated as read-only by every solver in this module.
package geom
