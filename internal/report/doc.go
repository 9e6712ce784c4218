// Package report renders analysis results to the console.
//
// ConsoleRenderer writes the per-file statistics block (mean with its
// standard error, then the standard deviation, both with the charge unit
// suffix "C") and the aggregate batch footer. All output goes through an
// injected io.Writer so drivers can target stdout and tests can capture
// the exact layout.
//
// Floats are formatted with a configurable number of significant digits,
// six by default.
package report
