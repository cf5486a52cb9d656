// Package reader performs zero-copy point lookups directly against a
// serialized bitmap-trie buffer. It never materializes trie nodes: every
// Lookup walks the raw bytes level by level using popcount-based rank.
package reader

import (
	"github.com/joshuapare/hamtidx/internal/buf"
	"github.com/joshuapare/hamtidx/internal/format"
	"github.com/joshuapare/hamtidx/internal/obslog"
)

// Reader wraps an immutable byte buffer produced by builder.Build and
// answers point lookups against it without copying or indexing the buffer.
type Reader struct {
	buf    []byte
	head   format.Header
	empty  bool
	fanOut uint64
	slice  uint
}

// Open parses the header of buf (which must be a builder.Build output) and
// returns a Reader over it. A zero-length buf is accepted and produces a
// Reader that treats every lookup as a miss, matching the empty-build
// convention: an empty build has no header to parse.
func Open(buf []byte) (*Reader, error) {
	if len(buf) == 0 {
		return &Reader{empty: true}, nil
	}
	head, err := format.ParseHeader(buf)
	if err != nil {
		obslog.L.Debug("reader: header parse failed", "err", err)
		return nil, err
	}
	obslog.L.Debug("reader: opened",
		"levels", head.Levels, "bitmaskWidth", head.BitmaskWidth,
		"pointerWidth", head.PointerWidth, "valueWidth", head.ValueWidth)
	return &Reader{
		buf:    buf,
		head:   head,
		fanOut: uint64(format.FanOut(head.BitmaskWidth)),
		slice:  format.SliceBits(head.BitmaskWidth),
	}, nil
}

// Header returns the decoded header. Calling it on a Reader built from an
// empty buffer returns the zero Header.
func (r *Reader) Header() format.Header {
	return r.head
}

// notFound is the sentinel valueOffset Lookup returns on any miss: out of
// range, an unset bitmask bit, or an empty buffer. It is distinct from any
// real offset, unlike the "offset > 0" check an earlier design relied on.
const notFound = -1

// Lookup returns the absolute byte offset of key's value within buf, or
// notFound if key is absent. It never allocates.
func (r *Reader) Lookup(key uint64) int {
	if r.empty {
		return notFound
	}
	L := r.head.Levels
	s := r.slice
	if uint(L)*s < 64 && (key>>(uint(L)*s)) != 0 {
		return notFound
	}

	base := format.HeaderSize
	layerOffset := 0
	ptrIndex := 0
	B := r.head.BitmaskWidth
	P := r.head.PointerWidth
	W := r.head.ValueWidth

	for level := L - 1; level >= 0; level-- {
		x := (key >> (uint(level) * s)) & (r.fanOut - 1)

		mask, ok := buf.Slice(r.buf, base+layerOffset, B)
		if !ok {
			return notFound
		}

		byteIdx := uint(x) >> 3
		bitIdx := uint(x) & 7
		if int(byteIdx) >= len(mask) || mask[byteIdx]&(1<<bitIdx) == 0 {
			return notFound
		}
		ptrIndex = format.Rank(mask, uint(x))

		if level > 0 {
			ptrBytes, ok := buf.Slice(r.buf, base+layerOffset+B+ptrIndex*P, P)
			if !ok {
				return notFound
			}
			layerOffset = int(format.ReadPointer(ptrBytes, P))
		}
	}

	return base + layerOffset + B + ptrIndex*W
}

// Value returns the W-byte slice at the resolved offset, aliasing the
// backing buffer. ok is false on a miss.
func (r *Reader) Value(key uint64) (value []byte, ok bool) {
	off := r.Lookup(key)
	if off < 0 {
		return nil, false
	}
	return buf.Slice(r.buf, off, r.head.ValueWidth)
}

// Exists reports whether key is present.
func (r *Reader) Exists(key uint64) bool {
	return r.Lookup(key) >= 0
}
