package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// NumberResult is the outcome of coercing a loosely typed numeric field.
// Fallback is true when the input could not be read and Value is the zero default.
type NumberResult struct {
	Value    float64
	Fallback bool
}

// ParseNumber coerces API numeric fields, which may arrive as numbers or
// strings. Unreadable, non-finite and negative values fall back to zero.
func ParseNumber(v any) NumberResult {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return NumberResult{Fallback: true}
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return NumberResult{Fallback: true}
		}
		f = parsed
	default:
		return NumberResult{Fallback: true}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return NumberResult{Fallback: true}
	}
	return NumberResult{Value: f}
}

// ParseFlag reads a boolean field. Only a JSON true counts; strings such as
// "true" or "false" and every other type are false.
func ParseFlag(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
