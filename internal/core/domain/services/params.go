package services

import (
	"fmt"
	"strconv"
)

// StringSlice normalizes a scalar-or-list parameter value into a string
// sequence. The NLU platform delivers single-value slots as scalars and
// multi-value slots as lists; callers always want one canonical shape.
// A nil value yields an empty sequence.
func StringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
				continue
			}
			out = append(out, fmt.Sprint(el))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

// NumberSlice normalizes a scalar-or-list parameter value into a float64
// sequence. JSON decoding hands every number over as float64; numeric strings
// are accepted too. Values that are not numeric-like are kept as quantity 0 so
// the sequence length still reflects what the platform sent and a count
// mismatch is reported instead of a silently shortened list.
func NumberSlice(value any) []float64 {
	switch v := value.(type) {
	case nil:
		return nil
	case float64:
		return []float64{v}
	case int:
		return []float64{float64(v)}
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, el := range v {
			out = append(out, toFloat(el))
		}
		return out
	default:
		return []float64{toFloat(v)}
	}
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
