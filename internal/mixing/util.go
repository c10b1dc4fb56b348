package mixing

import (
	"math"
	"strconv"
)

// formatFloat formats a float for display.
// Integers are printed without a fractional part; everything else uses the
// shortest representation that round-trips.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// finitePositive reports whether v is a finite number greater than zero.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
