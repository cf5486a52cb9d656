// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU16LE writes a little-endian uint16 into b[0:2].
func PutU16LE(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// PutU32LE writes a little-endian uint32 into b[0:4].
func PutU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// PutU64LE writes a little-endian uint64 into b[0:8].
func PutU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// UintLE decodes an n-byte (1..8) little-endian unsigned integer from b,
// zero-extending into a uint64. Used for the variable-width pointer codec,
// where n is chosen at build time (1..4 bytes) and unused high bytes of the
// result are implicitly zero.
func UintLE(b []byte, n int) uint64 {
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// PutUintLE encodes v into the low n bytes (1..8) of b, little-endian.
// Behavior is undefined if v does not fit in n bytes; callers choose n large
// enough before calling (see format.ChoosePointerWidth).
func PutUintLE(b []byte, n int, v uint64) {
	for i := 0; i < n; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
