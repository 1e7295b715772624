package ahocorasick

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors identifying the taxonomy from the error-handling design.
// Callers compare against these with errors.Is; call sites wrap them with
// github.com/pkg/errors to attach the offending key, index, or node.
var (
	ErrNotFound        = errors.New("ahocorasick: not found")
	ErrInvalidKey      = errors.New("ahocorasick: invalid key")
	ErrTypeMismatch    = errors.New("ahocorasick: type mismatch")
	ErrOutOfRange      = errors.New("ahocorasick: value out of range")
	ErrIndexError      = errors.New("ahocorasick: index out of bounds")
	ErrWrongPhase      = errors.New("ahocorasick: wrong phase")
	ErrInvalidated     = errors.New("ahocorasick: iterator invalidated by mutation")
	ErrInvalidArgument = errors.New("ahocorasick: invalid argument")
	ErrCorruptInput    = errors.New("ahocorasick: corrupt input")
)

func errEmptyKey() error {
	return pkgerrors.Wrap(ErrInvalidKey, "key must not be empty")
}

func errOutOfRange(index int, symbol int64) error {
	return pkgerrors.Wrapf(ErrOutOfRange, "symbol at index %d (%d) is outside the non-negative 32-bit sequence range", index, symbol)
}

func errNotFound(key any) error {
	return pkgerrors.Wrapf(ErrNotFound, "key %v", key)
}

func errWrongPhase(op string, got Phase) error {
	return pkgerrors.Wrapf(ErrWrongPhase, "%s requires AHOCORASICK phase, automaton is %s", op, got)
}

func errIndexOutOfBounds(what string, got, limit int) error {
	return pkgerrors.Wrapf(ErrIndexError, "%s %d out of bounds for length %d", what, got, limit)
}

func errWildcardSymbolLength(sym string) error {
	return pkgerrors.Wrapf(ErrInvalidArgument, "wildcard symbol %q must be exactly one symbol", sym)
}

func errInvalidated() error {
	return pkgerrors.WithStack(ErrInvalidated)
}

func errCorrupt(format string, args ...interface{}) error {
	return pkgerrors.Wrap(ErrCorruptInput, fmt.Sprintf(format, args...))
}
