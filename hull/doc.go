// Package hull computes the convex hull of a planar point set.
//
// Vertices returns hull vertex INDICES (not coordinates) in counter-clockwise
// order, starting from the lexicographically smallest point (min X, then min Y).
// Collinear boundary points and coincident duplicates are dropped, so a set of
// collinear points yields its two extreme points and a set of identical points
// yields a single index.
//
// Algorithm: Andrew's monotone chain. Complexity O(n log n) time, O(n) space.
package hull
