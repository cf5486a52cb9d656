package format

import (
	"fmt"

	"github.com/joshuapare/hamtidx/internal/buf"
)

// Header field bit layout within the 16-bit little-endian header word.
//
//	Bits   Width  Meaning
//	0-4    5      Levels (L), 1..31
//	5-7    3      bitmask width code (log2 of B in {1,2,4,8})
//	8-9    2      pointer width minus one (P-1, P in {1,2,3,4})
//	10-11  2      value width code (log2 of W in {1,2,4,8})
//	12     1      reserved variable-value-size flag, must be 0
//	13-15  3      reserved, must be 0
const (
	levelsShift  = 0
	levelsMask   = 0x1F
	bWidthShift  = 5
	bWidthMask   = 0x07
	ptrWidthShift = 8
	ptrWidthMask  = 0x03
	vWidthShift  = 10
	vWidthMask   = 0x03
	varFlagShift = 12
	varFlagMask  = 0x01
	reservedShift = 13
	reservedMask  = 0x07
)

// Header is the decoded form of the 2-byte header preceding the trie body.
type Header struct {
	Levels       int // L: number of trie levels, root at level L down to leaves at level 1
	BitmaskWidth int // B: bytes per layer bitmask, one of {1,2,4,8}
	PointerWidth int // P: bytes per child pointer, one of {1,2,3,4}
	ValueWidth   int // W: bytes per value, one of {1,2,4,8}
}

// Encode packs h into the 2-byte little-endian header word. It validates
// every field is within the range the bit layout can represent.
func Encode(h Header) ([HeaderSize]byte, error) {
	var out [HeaderSize]byte

	if h.Levels < 1 || h.Levels > MaxLevels {
		return out, fmt.Errorf("format: levels %d out of range [1,%d]", h.Levels, MaxLevels)
	}
	bCode, ok := WidthCode(h.BitmaskWidth)
	if !ok {
		return out, fmt.Errorf("format: bitmask width %d: %w", h.BitmaskWidth, ErrBadWidth)
	}
	if h.PointerWidth < MinPointerWidth || h.PointerWidth > MaxPointerWidth {
		return out, fmt.Errorf("format: pointer width %d out of range [%d,%d]", h.PointerWidth, MinPointerWidth, MaxPointerWidth)
	}
	vCode, ok := WidthCode(h.ValueWidth)
	if !ok {
		return out, fmt.Errorf("format: value width %d: %w", h.ValueWidth, ErrBadWidth)
	}

	var word uint16
	word |= uint16(h.Levels&levelsMask) << levelsShift
	word |= (bCode & bWidthMask) << bWidthShift
	word |= uint16((h.PointerWidth-1)&ptrWidthMask) << ptrWidthShift
	word |= (vCode & vWidthMask) << vWidthShift
	// variable-flag and reserved bits are always 0.

	buf.PutU16LE(out[:], word)
	return out, nil
}

// ParseHeader decodes the header at the start of data. data must contain at
// least HeaderSize bytes. ReservedFlagSet (the variable-value bit) and any
// nonzero reserved bits are rejected so a future format revision cannot be
// silently misread.
func ParseHeader(data []byte) (Header, error) {
	if !buf.Has(data, 0, HeaderSize) {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	word := buf.U16LE(data[:HeaderSize])

	if (word>>varFlagShift)&varFlagMask != 0 {
		return Header{}, ErrReservedFlag
	}
	if (word>>reservedShift)&reservedMask != 0 {
		return Header{}, fmt.Errorf("header: reserved bits set: %w", ErrReservedFlag)
	}

	levels := int((word >> levelsShift) & levelsMask)
	bCode := (word >> bWidthShift) & bWidthMask
	ptrWidth := int((word>>ptrWidthShift)&ptrWidthMask) + 1
	vCode := (word >> vWidthShift) & vWidthMask

	h := Header{
		Levels:       levels,
		BitmaskWidth: WidthFromCode(bCode),
		PointerWidth: ptrWidth,
		ValueWidth:   WidthFromCode(vCode),
	}
	if _, ok := WidthCode(h.BitmaskWidth); !ok {
		return Header{}, fmt.Errorf("header: bitmask width code %d: %w", bCode, ErrBadWidth)
	}
	if _, ok := WidthCode(h.ValueWidth); !ok {
		return Header{}, fmt.Errorf("header: value width code %d: %w", vCode, ErrBadWidth)
	}
	if h.Levels < 1 {
		return Header{}, fmt.Errorf("header: levels must be >= 1")
	}
	return h, nil
}
