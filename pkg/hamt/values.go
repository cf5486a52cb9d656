package hamt

import "math"

// Fixed-width value conversions for the scalar types with natural fixed
// widths: byte -> 1B, short -> 2B, int/float -> 4B, long/double -> 8B, all
// little-endian. Builder.Dump only ever sees raw bytes; these are for
// callers who'd rather not hand-roll the encoding each time.

// ByteValue encodes a single byte as a 1-byte value.
func ByteValue(v byte) []byte { return []byte{v} }

// Uint16Value encodes v as a 2-byte little-endian value.
func Uint16Value(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

// Int16Value encodes v as a 2-byte little-endian value.
func Int16Value(v int16) []byte { return Uint16Value(uint16(v)) }

// Uint32Value encodes v as a 4-byte little-endian value.
func Uint32Value(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

// Int32Value encodes v as a 4-byte little-endian value.
func Int32Value(v int32) []byte { return Uint32Value(uint32(v)) }

// Float32Value encodes v's IEEE-754 bit pattern as a 4-byte little-endian value.
func Float32Value(v float32) []byte { return Uint32Value(math.Float32bits(v)) }

// Uint64Value encodes v as an 8-byte little-endian value.
func Uint64Value(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
	return b
}

// Int64Value encodes v as an 8-byte little-endian value.
func Int64Value(v int64) []byte { return Uint64Value(uint64(v)) }

// Float64Value encodes v's IEEE-754 bit pattern as an 8-byte little-endian value.
func Float64Value(v float64) []byte { return Uint64Value(math.Float64bits(v)) }

// AsByte decodes a 1-byte value from b[0]. Like the other As* helpers, it
// panics when b is shorter than the width it reads and ignores any bytes
// beyond that width.
func AsByte(b []byte) byte { return b[0] }

// AsUint16 decodes a 2-byte little-endian value.
func AsUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// AsInt16 decodes a 2-byte little-endian value.
func AsInt16(b []byte) int16 { return int16(AsUint16(b)) }

// AsUint32 decodes a 4-byte little-endian value.
func AsUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// AsInt32 decodes a 4-byte little-endian value.
func AsInt32(b []byte) int32 { return int32(AsUint32(b)) }

// AsFloat32 decodes a 4-byte little-endian IEEE-754 value.
func AsFloat32(b []byte) float32 { return math.Float32frombits(AsUint32(b)) }

// AsUint64 decodes an 8-byte little-endian value.
func AsUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// AsInt64 decodes an 8-byte little-endian value.
func AsInt64(b []byte) int64 { return int64(AsUint64(b)) }

// AsFloat64 decodes an 8-byte little-endian IEEE-754 value.
func AsFloat64(b []byte) float64 { return math.Float64frombits(AsUint64(b)) }
