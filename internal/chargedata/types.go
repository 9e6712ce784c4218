package chargedata

import "errors"

// Rejection reasons reported by ParseMeasurement.
var (
	// ErrBlankLine marks a line that is empty after trimming.
	ErrBlankLine = errors.New("blank line")
	// ErrNotANumber marks a token that does not parse as a float.
	ErrNotANumber = errors.New("not a number")
	// ErrNonFinite marks a parsed value of NaN or infinity.
	ErrNonFinite = errors.New("value is not finite")
	// ErrNegativeValue marks a parsed value below zero.
	ErrNegativeValue = errors.New("negative value")
	// ErrTrailingContent marks residual content after the numeric token.
	ErrTrailingContent = errors.New("trailing content after value")
)

// Dataset holds the accepted measurements read from a single input file.
// Values preserves file order and contains only lines that passed
// validation; rejected lines leave no gaps in the sequence.
type Dataset struct {
	Source     string    // path the measurements were read from
	Values     []float64 // accepted charge readings, in file order
	Rejected   int       // lines dropped as corrupt
	TotalLines int       // physical lines scanned
}

// Count returns the number of accepted measurements.
func (d *Dataset) Count() int {
	return len(d.Values)
}
