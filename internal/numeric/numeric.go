// Package numeric holds the scalar coercion helpers shared by column
// resolution and scoring.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Parse reads a decimal number from a raw CSV cell. Surrounding whitespace
// and a trailing percent sign are ignored. Non-finite results are rejected.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseOr parses raw, falling back to def on failure
func ParseOr(raw string, def float64) float64 {
	if v, ok := Parse(raw); ok {
		return v
	}
	return def
}

// ParseOrNaN parses raw, returning NaN on failure
func ParseOrNaN(raw string) float64 {
	if v, ok := Parse(raw); ok {
		return v
	}
	return math.NaN()
}

// Clamp saturates v to [lo, hi]. NaN passes through unchanged.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Scale maps v onto [0, 1] by clamped min-max scaling.
func Scale(v, lo, hi float64) float64 {
	return (Clamp(v, lo, hi) - lo) / (hi - lo)
}

// Mean returns the arithmetic mean of values, or 0 when there are none.
func Mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
