// Package tspcompare measures how close a fast construction heuristic comes
// to the optimal travelling-salesman tour on small random Euclidean instances.
//
// Two solvers run on every instance:
//
//	Farthest insertion — convex-hull seed, then cheapest insertion, O(n³)
//	Held–Karp          — bitmask dynamic programming, exact, O(n²·2ⁿ)
//
// and their tours are judged two ways: by cost (relative tolerance) and by the
// number of shared edges.
//
// Layout:
//
//	geom/           — City (gonum r2.Vec), Euclidean distance, distance matrices, random instances
//	hull/           — convex hull vertex indices (monotone chain)
//	tsp/            — both solvers, tour helpers, CompareCost / ComparePath
//	experiment/     — YAML config, per-instance comparison, concurrent batch runner, summaries
//	report/         — CSV and SQLite sinks, PNG tour plots
//	cmd/tspcompare/ — command-line driver
//
// Quick example:
//
//	cities, _ := geom.RandomCities(9, geom.WithSeed(42))
//	rec, _ := experiment.CompareAlgo(cities)
//	fmt.Println(rec.CostEqual, rec.Segments, rec.Gap)
package tspcompare
