package ahocorasick

import pkgerrors "github.com/pkg/errors"

// resolveValue computes the payload to store for a terminal activation or
// replacement, enforcing the per-store-mode rules of §4.6: OPAQUE stores
// whatever the caller passed, INTEGER auto-assigns a running counter when
// no explicit value is given (and rejects non-numeric explicit values),
// LENGTH always derives the value from the key length.
//
// The counter is 1-based (first auto-assigned key gets 1, not 0): see
// original_source/unittests.py's TestTrieStoreInts.test_add_word1, which
// pins pyahocorasick's own running counter to start at 1.
func (a *automaton) resolveValue(value any, hasValue bool, keyLen int) (any, error) {
	switch a.store {
	case LENGTH:
		return keyLen, nil
	case INTEGER:
		if !hasValue {
			a.nextInt++
			return a.nextInt, nil
		}
		if !isInteger(value) {
			return nil, errTypeMismatchValue(value)
		}
		return value, nil
	default: // OPAQUE
		return value, nil
	}
}

// isInteger reports whether v is one of the integer kinds INTEGER store
// mode accepts. Floats are deliberately excluded: persist.go's wire format
// carries INTEGER/LENGTH payloads as a single int64 field (toInt64), so an
// INTEGER-mode value must round-trip through Save/Load without loss —
// accepting floats here would silently truncate them on save.
func isInteger(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

func errTypeMismatchValue(value any) error {
	return pkgerrors.Wrapf(ErrTypeMismatch, "INTEGER store mode requires an integer value, got %T", value)
}
