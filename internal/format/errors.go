package format

import "errors"

// Sentinel errors returned by the format codecs. Higher layers (pkg/hamt)
// wrap these into a typed Error so callers can switch on category instead
// of matching strings, while package format itself stays dependency-free.
var (
	// ErrKeyOrder indicates the keys presented to a builder were not
	// strictly ascending.
	ErrKeyOrder = errors.New("format: keys not strictly ascending")

	// ErrValueWidth indicates a supplied value's byte length did not match
	// the configured value width W.
	ErrValueWidth = errors.New("format: value width mismatch")

	// ErrAddressSpace indicates the trie body does not fit in a 32-bit
	// offset even at the maximum pointer width (P=4).
	ErrAddressSpace = errors.New("format: body exceeds addressable offset space")

	// ErrTruncated indicates a buffer shorter than HeaderSize. The body
	// length is not checked against the header when a buffer is opened; a
	// layer or pointer that reaches past the end of the buffer makes that
	// lookup miss instead of producing this error.
	ErrTruncated = errors.New("format: truncated buffer")

	// ErrReservedFlag indicates the header's variable-value-size bit was
	// set. The current format never sets this bit; a reader that sees it
	// is looking at a buffer it cannot interpret.
	ErrReservedFlag = errors.New("format: reserved variable-value flag set")

	// ErrBadWidth indicates a bitmask or value width outside {1,2,4,8}.
	ErrBadWidth = errors.New("format: width must be 1, 2, 4, or 8 bytes")
)
