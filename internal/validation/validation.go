// Package validation provides small field validators for request bodies.
package validation

import (
	"math"
	"strings"
)

// Violations maps field names to short violation codes.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// String flattens the violations into one error message.
func (v Violations) String() string {
	parts := make([]string, 0, len(v))
	for field, code := range v {
		parts = append(parts, field+": "+code)
	}
	return strings.Join(parts, ", ")
}

// Required records a violation when value is blank after trimming.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// FiniteRange records a violation when val is NaN, infinite, or outside
// [minVal, maxVal].
func FiniteRange(field string, val, minVal, maxVal float64, v Violations) {
	if math.IsNaN(val) || math.IsInf(val, 0) || val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}
