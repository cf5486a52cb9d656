package format

import "github.com/joshuapare/hamtidx/internal/buf"

// maxForWidth returns the largest unsigned value representable in n bytes.
func maxForWidth(n int) uint64 {
	if n >= 8 {
		return ^uint64(0)
	}
	return (uint64(1) << (8 * uint(n))) - 1
}

// Fits reports whether offset can be represented in a pointer of width p
// bytes, p in [MinPointerWidth, MaxPointerWidth].
func Fits(offset uint64, p int) bool {
	return offset <= maxForWidth(p)
}

// ChoosePointerWidth returns the smallest P in {1,2,3,4} that can address
// every offset up to and including maxOffset. It returns ErrAddressSpace if
// maxOffset does not fit even at the maximum width.
func ChoosePointerWidth(maxOffset uint64) (int, error) {
	for p := MinPointerWidth; p <= MaxPointerWidth; p++ {
		if Fits(maxOffset, p) {
			return p, nil
		}
	}
	return 0, ErrAddressSpace
}

// ReadPointer decodes a P-byte little-endian pointer at the start of b.
func ReadPointer(b []byte, p int) uint64 {
	return buf.UintLE(b, p)
}

// WritePointer encodes offset into the first p bytes of b, little-endian.
// The caller must have already verified Fits(offset, p).
func WritePointer(b []byte, p int, offset uint64) {
	buf.PutUintLE(b, p, offset)
}
