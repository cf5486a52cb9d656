package hamt

import (
	"github.com/joshuapare/hamtidx/internal/reader"
)

// Reader answers point lookups against a buffer produced by Builder.Dump
// (or any buffer with an identical layout). It never copies or indexes the
// buffer; every call touches only the bytes the lookup actually needs.
type Reader struct {
	r *reader.Reader
}

// NewReader parses data's header and returns a Reader over it. data is
// borrowed, not copied: it must not be mutated for the Reader's lifetime.
// A zero-length data is accepted and treated as an empty map whose every
// lookup misses.
func NewReader(data []byte) (*Reader, error) {
	r, err := reader.Open(data)
	if err != nil {
		return nil, classify(err)
	}
	return &Reader{r: r}, nil
}

// Exists reports whether key is present.
func (rd *Reader) Exists(key uint64) bool {
	return rd.r.Exists(key)
}

// Get returns the value stored for key, or def if key is absent.
func (rd *Reader) Get(key uint64, def []byte) []byte {
	v, ok := rd.r.Value(key)
	if !ok {
		return def
	}
	return v
}

// Levels returns L, the number of trie levels in the underlying buffer.
func (rd *Reader) Levels() int { return rd.r.Header().Levels }

// BitmaskWidth returns B, the per-layer bitmask width in bytes.
func (rd *Reader) BitmaskWidth() int { return rd.r.Header().BitmaskWidth }

// PointerWidth returns P, the child-pointer width in bytes.
func (rd *Reader) PointerWidth() int { return rd.r.Header().PointerWidth }

// ValueWidth returns W, the fixed value width in bytes.
func (rd *Reader) ValueWidth() int { return rd.r.Header().ValueWidth }
