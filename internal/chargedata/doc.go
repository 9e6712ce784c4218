// Package chargedata loads charge measurement files and validates their
// contents line by line.
//
// # Input Format
//
// A measurement file is plain text with one numeric token per line,
// optionally surrounded by whitespace:
//
//	12.5
//	  7.0
//	0.3
//
// A line is accepted only when it parses to a single finite,
// non-negative floating-point value with no residual content. Anything
// else is a corrupt data point: it is logged, counted, and skipped, and
// the load continues with the next line. Line length is unbounded.
//
// # Ordering
//
// Accepted values keep their original relative order. Rejected lines
// leave no gaps; the resulting sequence length equals the number of
// accepted lines, never the raw line count.
//
// # Failure Model
//
// Only two operations can fail the load itself: opening the file and
// reading from it. A missing file is reported as a not found error and
// any other open or read failure as a storage error; per-line
// corruption never aborts a load.
//
// # Usage
//
//	loader := chargedata.NewLoader(logger)
//	dataset, err := loader.Load(ctx, "data/run1.dat")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dataset.Count(), "accepted readings")
package chargedata
