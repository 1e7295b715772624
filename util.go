package ahocorasick

import "sort"

// sortInt32s sorts a slice of symbols ascending in place. Used wherever a
// deterministic, stable-per-state iteration order over a node's edges is
// required (key enumeration, persistence).
func sortInt32s(s []int32) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}

// toInt64 converts an INTEGER/LENGTH payload to the wire format's int64
// field. Only integer kinds reach here: isInteger in value.go rejects
// floats at Add time precisely so this conversion is always lossless.
func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	default:
		return 0
	}
}
