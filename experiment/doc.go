// Package experiment runs the heuristic-versus-exact comparison at scale.
//
// A single instance is handled by Compare: it draws nothing itself, solves the
// given cities with tsp.FarthestInsertion and tsp.SolveExact, and reports both
// costs, the cost verdict, the shared-segment count and both solver timings as
// a Record.
//
// A batch is handled by Runner: for every group size n in
// [Config.MinNodes, Config.MaxNodes] it draws Config.Trials random instances
// (seeds derived from Config.Seed, so a run is reproducible), compares them on
// a bounded pool of Config.Workers goroutines and hands each finished group to
// a Sink in one call. Summarize folds records into per-n statistics.
//
// The package does not log; progress is reported through a callback.
package experiment
