package report

import (
	"fmt"
	"io"

	"chargecli/internal/analysis"
)

// ConsoleRenderer writes per-file statistics blocks and batch summaries
// to a console writer.
type ConsoleRenderer struct {
	out       io.Writer
	precision int
}

// NewConsoleRenderer creates a renderer targeting out. A non-positive
// precision falls back to the default of 6 significant digits.
func NewConsoleRenderer(out io.Writer, precision int) *ConsoleRenderer {
	if precision <= 0 {
		precision = defaultPrecision
	}
	return &ConsoleRenderer{
		out:       out,
		precision: precision,
	}
}

// Welcome prints the greeting banner shown when the interactive driver
// starts.
func (r *ConsoleRenderer) Welcome() {
	fmt.Fprintln(r.out, "Welcome to Matt's impetuous charge calculator!")
}

// RenderResult prints the statistics block for one analyzed file:
//
//	File read from: millikan.dat
//	    The computed mean is:
//	        (1.59627 +/- 1.12873)C
//	    The computed standard deviation is:
//	        0.0752928C
func (r *ConsoleRenderer) RenderResult(res *analysis.Result) {
	fmt.Fprintf(r.out, "File read from: %s\n", res.Source)
	fmt.Fprintf(r.out, "    The computed mean is:\n")
	fmt.Fprintf(r.out, "        (%s +/- %s)C\n",
		formatMeasurement(res.Mean, r.precision),
		formatMeasurement(res.StdErr, r.precision))
	fmt.Fprintf(r.out, "    The computed standard deviation is:\n")
	fmt.Fprintf(r.out, "        %sC\n",
		formatMeasurement(res.StdDev, r.precision))
}

// RenderInsufficientData prints the notice shown when a file produced too
// few valid measurements for statistics. Processing continues with the
// next file.
func (r *ConsoleRenderer) RenderInsufficientData(source string, count int) {
	fmt.Fprintf(r.out, "File read from: %s\n", source)
	fmt.Fprintf(r.out, "    Not enough valid data points to compute statistics (%s accepted).\n",
		formatCount(count))
}

// RenderFatal prints the abort notice for a file that could not be
// opened. The caller terminates the run afterwards.
func (r *ConsoleRenderer) RenderFatal(path string) {
	fmt.Fprintf(r.out, "Could not open file: %s.\n", path)
	fmt.Fprintln(r.out, "Exiting...")
}

// RenderBatchSummary prints the aggregate footer for a batch run. The
// insufficient argument counts files that were read but produced too few
// valid measurements.
func (r *ConsoleRenderer) RenderBatchSummary(results []*analysis.Result, insufficient int) {
	accepted := 0
	rejected := 0
	for _, res := range results {
		accepted += res.Count
		rejected += res.Rejected
	}

	fmt.Fprintln(r.out, "\n=== BATCH SUMMARY ===")
	fmt.Fprintf(r.out, "Files analyzed:       %s\n", formatCount(len(results)))
	fmt.Fprintf(r.out, "Insufficient data:    %s\n", formatCount(insufficient))
	fmt.Fprintf(r.out, "Accepted data points: %s\n", formatCount(accepted))
	fmt.Fprintf(r.out, "Rejected data points: %s\n", formatCount(rejected))
}
