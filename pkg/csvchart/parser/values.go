package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumeric indicates a cell value that cannot be read as a number.
var ErrNotNumeric = errors.New("not a number")

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// ParseNumber reads a cell as a float64.
// Surrounding spaces are ignored and an empty cell reads as 0.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotNumeric
	}
	return f, nil
}

// ParseNumbers reads every value as a float64.
// On failure it returns the index of the offending value.
func ParseNumbers(values []string) ([]float64, int, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, err := ParseNumber(v)
		if err != nil {
			return nil, i, err
		}
		out[i] = f
	}
	return out, -1, nil
}
