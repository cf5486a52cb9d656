package hamt

import (
	"github.com/joshuapare/hamtidx/internal/builder"
	"github.com/joshuapare/hamtidx/internal/format"
)

// Builder produces a serialized bitmap-trie buffer from a sorted key/value
// sequence. It holds no state across calls to Dump; each call is an
// independent single-pass build.
type Builder struct {
	cfg builder.Config
}

// NewBuilder validates opts and returns a Builder configured to emit
// layers with the given bitmask and value widths.
func NewBuilder(opts Options) (*Builder, error) {
	// A zero-value width is a common mistake when constructing Options by
	// hand instead of starting from DefaultOptions; validate eagerly so the
	// error surfaces at construction, not on the first non-empty Dump (an
	// empty Dump never touches widths at all, per the empty-input rule).
	if _, ok := format.WidthCode(opts.BitmaskWidth); !ok {
		return nil, classify(format.ErrBadWidth)
	}
	if _, ok := format.WidthCode(opts.ValueWidth); !ok {
		return nil, classify(format.ErrBadWidth)
	}

	return &Builder{cfg: builder.Config{
		BitmaskWidth: opts.BitmaskWidth,
		ValueWidth:   opts.ValueWidth,
	}}, nil
}

// Dump builds the trie over keys/values and returns the serialized buffer.
// keys must be strictly ascending with no duplicates; every value must be
// exactly opts.ValueWidth bytes. An empty input returns an empty, non-nil
// buffer.
func (b *Builder) Dump(keys []uint64, values [][]byte) ([]byte, error) {
	out, err := builder.Build(keys, values, b.cfg)
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}
