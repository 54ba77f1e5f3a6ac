package utils

import (
	"fmt"
	"math"
	"strconv"
)

// NormalizeScalar collapses the value kinds produced by SQL drivers and
// decoders into the canonical cell kinds used by datasets: nil, string,
// int64, float64 and bool. Unknown types fall back to their string form.
func NormalizeScalar(val any) any {
	switch v := val.(type) {
	case nil:
		return nil
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return v
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		// Values beyond int64 range keep their string form instead of
		// wrapping to a negative number.
		if uint64(v) > math.MaxInt64 {
			return strconv.FormatUint(uint64(v), 10)
		}
		return int64(v)
	case uint64:
		if v > math.MaxInt64 {
			return strconv.FormatUint(v, 10)
		}
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return v
	case float32:
		return float64(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// InferScalar parses a raw text cell into the most specific scalar kind:
// int64, then float64, then bool, falling back to the string itself.
// Empty cells become nil.
func InferScalar(raw string) any {
	if raw == "" {
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	switch raw {
	case "true", "True", "TRUE":
		return true
	case "false", "False", "FALSE":
		return false
	}
	return raw
}

// FormatScalar renders a cell for CSV export. nil becomes the empty string;
// numbers keep their exact textual form.
func FormatScalar(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
