package domain

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds v to the given number of decimal places using the correctly
// rounded decimal expansion, so 0.125 at two places stays on the even digit.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// FormatFloat renders v in its shortest decimal form, keeping a trailing
// ".0" on integral values (80 -> "80.0", 0.3 -> "0.3").
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return s
	}
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
