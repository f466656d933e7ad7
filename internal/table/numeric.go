package table

import (
	"math"
	"strconv"
	"strings"
)

// Numeric parses a cell value as a float. It accepts both "123.4" and the
// German-style "123,4" found in breeding-value exports; when both separators
// appear, the right-most one is taken as the decimal point and the other is
// stripped as a thousands separator.
func Numeric(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, " ", " ")

	dec := '.'
	cpos := strings.LastIndex(raw, ",")
	dpos := strings.LastIndex(raw, ".")
	switch {
	case cpos >= 0 && dpos >= 0:
		if cpos > dpos {
			dec = ','
		}
	case cpos >= 0:
		dec = ','
	}
	for _, sep := range []rune{',', '.', ' '} {
		if sep != dec {
			raw = strings.ReplaceAll(raw, string(sep), "")
		}
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SortValue returns the ordering key for a trait cell. Missing or unparseable
// values sort below every real number.
func SortValue(s string) float64 {
	if f, ok := Numeric(s); ok {
		return f
	}
	return math.Inf(-1)
}
