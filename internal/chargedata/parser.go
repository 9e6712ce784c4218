package chargedata

import (
	"math"
	"strconv"
	"strings"
)

// ParseMeasurement parses one raw input line into a charge reading.
// A valid line carries exactly one finite, non-negative numeric token,
// optionally surrounded by whitespace. Everything else is rejected with
// a sentinel error naming the reason.
func ParseMeasurement(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrBlankLine
	}

	fields := strings.Fields(trimmed)
	if len(fields) > 1 {
		return 0, ErrTrailingContent
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, ErrNotANumber
	}

	// strconv accepts "nan" and "inf" spellings; a charge reading must be finite
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNonFinite
	}

	if value < 0 {
		return 0, ErrNegativeValue
	}

	return value, nil
}
