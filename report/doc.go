// Package report persists and draws comparison results.
//
// CSVSink and SQLiteSink implement experiment.Sink; both take one group of
// records per Write. PlotTour renders a single tour as a PNG.
package report
