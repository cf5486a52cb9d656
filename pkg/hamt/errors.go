package hamt

import (
	"errors"

	"github.com/joshuapare/hamtidx/internal/format"
)

// ErrKind classifies errors so callers can branch on intent instead of
// matching error text.
type ErrKind int

const (
	// ErrKindKeyOrder: keys presented to a builder were not strictly ascending.
	ErrKindKeyOrder ErrKind = iota
	// ErrKindValueWidth: a supplied value's byte length didn't match the
	// configured value width.
	ErrKindValueWidth
	// ErrKindAddressSpace: the trie body doesn't fit in a 32-bit offset even
	// at the maximum pointer width.
	ErrKindAddressSpace
	// ErrKindTruncated: a reader was given a non-empty buffer shorter than
	// the 2-byte header. A body cut short is not detected by NewReader;
	// lookups that reach past the end of the buffer report a miss.
	ErrKindTruncated
	// ErrKindReservedFlag: a reader encountered the reserved variable-value
	// flag set in the header.
	ErrKindReservedFlag
	// ErrKindBadWidth: a bitmask or value width outside {1,2,4,8} bytes.
	ErrKindBadWidth
	// ErrKindInvalidInput: malformed arguments that don't correspond to a
	// specific on-disk format violation (mismatched slice lengths, etc.).
	ErrKindInvalidInput
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindKeyOrder:
		return "KeyOrderViolation"
	case ErrKindValueWidth:
		return "ValueWidthMismatch"
	case ErrKindAddressSpace:
		return "AddressSpaceExceeded"
	case ErrKindTruncated:
		return "TruncatedBuffer"
	case ErrKindReservedFlag:
		return "ReservedFlagSet"
	case ErrKindBadWidth:
		return "BadWidth"
	default:
		return "InvalidInput"
	}
}

// Error is a typed error wrapping the underlying sentinel from
// internal/format, letting callers switch on Kind rather than parsing
// messages.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// classify maps a format/builder error into the public typed Error. Errors
// that don't match a known sentinel are wrapped as ErrKindInvalidInput so
// callers never have to type-assert on an unrecognized internal error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	kind := ErrKindInvalidInput
	switch {
	case errors.Is(err, format.ErrKeyOrder):
		kind = ErrKindKeyOrder
	case errors.Is(err, format.ErrValueWidth):
		kind = ErrKindValueWidth
	case errors.Is(err, format.ErrAddressSpace):
		kind = ErrKindAddressSpace
	case errors.Is(err, format.ErrTruncated):
		kind = ErrKindTruncated
	case errors.Is(err, format.ErrReservedFlag):
		kind = ErrKindReservedFlag
	case errors.Is(err, format.ErrBadWidth):
		kind = ErrKindBadWidth
	}
	return &Error{Kind: kind, Msg: "hamt: " + kind.String(), Err: err}
}
