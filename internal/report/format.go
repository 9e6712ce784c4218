package report

import (
	"strconv"
)

// defaultPrecision is the number of significant digits used when no
// precision is configured, matching the iostream default the original
// console tool printed with.
const defaultPrecision = 6

// formatMeasurement renders a statistic with at most precision significant
// digits, trimming trailing zeros. Small and large magnitudes switch to
// scientific notation the same way %g does.
func formatMeasurement(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision, 64)
}

// formatCount renders a line or file count.
func formatCount(n int) string {
	return strconv.Itoa(n)
}
