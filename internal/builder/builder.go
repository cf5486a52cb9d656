// Package builder performs the single synchronous pass that turns a sorted
// key/value sequence into the serialized layer bytes of a bitmap-trie index.
// It never searches: ascending key order lets every layer be grown by
// appending to its most-recently-created child, never by a lookup.
package builder

import (
	"fmt"

	"github.com/joshuapare/hamtidx/internal/format"
	"github.com/joshuapare/hamtidx/internal/obslog"
	"github.com/joshuapare/hamtidx/internal/writer"
)

// Config fixes the two parameters a caller chooses up front; everything
// else (levels, pointer width, layer count) the builder derives from the
// input.
type Config struct {
	BitmaskWidth int // B, one of {1,2,4,8}
	ValueWidth   int // W, one of {1,2,4,8}
}

// Build lays out keys/values into a complete serialized buffer. keys must be
// strictly ascending; every value must be exactly cfg.ValueWidth bytes long.
// An empty input produces an empty buffer with no header, per the "empty
// map" convention consumers (pkg/hamt.Reader) rely on.
func Build(keys []uint64, values [][]byte, cfg Config) ([]byte, error) {
	n := len(keys)
	if n == 0 {
		return []byte{}, nil
	}
	if len(values) != n {
		return nil, fmt.Errorf("builder: %d keys but %d values", n, len(values))
	}
	if _, ok := format.WidthCode(cfg.BitmaskWidth); !ok {
		return nil, fmt.Errorf("builder: bitmask width %d: %w", cfg.BitmaskWidth, format.ErrBadWidth)
	}
	if _, ok := format.WidthCode(cfg.ValueWidth); !ok {
		return nil, fmt.Errorf("builder: value width %d: %w", cfg.ValueWidth, format.ErrBadWidth)
	}
	for i := 1; i < n; i++ {
		if keys[i] <= keys[i-1] {
			return nil, fmt.Errorf("builder: key[%d]=%#x does not exceed key[%d]=%#x: %w", i, keys[i], i-1, keys[i-1], format.ErrKeyOrder)
		}
	}
	for i, v := range values {
		if len(v) != cfg.ValueWidth {
			return nil, fmt.Errorf("builder: value[%d] has %d bytes, want %d: %w", i, len(v), cfg.ValueWidth, format.ErrValueWidth)
		}
	}

	B := cfg.BitmaskWidth
	W := cfg.ValueWidth
	fanOut := uint64(format.FanOut(B))
	s := format.SliceBits(B)

	levels := levelsFor(keys[n-1], s)
	if levels > format.MaxLevels {
		return nil, fmt.Errorf("builder: computed %d levels exceeds header capacity", levels)
	}

	nodes := []*node{newNode(B)}
	curLayer := make([]int, n)

	for level := levels; level >= 1; level-- {
		shift := uint(level-1) * s
		for i := 0; i < n; i++ {
			x := (keys[i] >> shift) & (fanOut - 1)
			nd := nodes[curLayer[i]]

			if level > 1 {
				if format.TestBit(nd.bitmask, uint(x)) {
					if nd.lastSliceValid && nd.lastSlice != x {
						panic("builder: child reuse invariant violated, keys are not properly ascending")
					}
					curLayer[i] = nd.lastChild
				} else {
					child := newNode(B)
					childIdx := len(nodes)
					nodes = append(nodes, child)
					nd.childIdx = append(nd.childIdx, childIdx)
					nd.lastChild = childIdx
					nd.lastSlice = x
					nd.lastSliceValid = true
					curLayer[i] = childIdx
				}
			} else {
				nd.isLeaf = true
				nd.values = append(nd.values, values[i])
			}
			format.SetBit(nd.bitmask, uint(x))
		}
	}

	pointerWidth, err := choosePointerWidth(nodes, B, W, n)
	if err != nil {
		return nil, err
	}

	running := 0
	for _, nd := range nodes {
		nd.offset = running
		running += layerSize(nd, B, pointerWidth, W)
	}

	header, err := format.Encode(format.Header{
		Levels:       levels,
		BitmaskWidth: B,
		PointerWidth: pointerWidth,
		ValueWidth:   W,
	})
	if err != nil {
		return nil, err
	}

	obslog.L.Debug("builder: layout chosen",
		"levels", levels, "nodes", len(nodes), "pointerWidth", pointerWidth, "bodySize", running)

	sink := writer.NewSink(format.HeaderSize + running)
	sink.Write(header[:])
	ptrBuf := make([]byte, pointerWidth)
	for _, nd := range nodes {
		sink.Write(nd.bitmask)
		if nd.isLeaf {
			for _, v := range nd.values {
				sink.Write(v)
			}
			continue
		}
		for _, childIdx := range nd.childIdx {
			format.WritePointer(ptrBuf, pointerWidth, uint64(nodes[childIdx].offset))
			sink.Write(ptrBuf)
		}
	}
	return sink.Finish(), nil
}

// levelsFor returns the smallest L such that maxKey>>(L*s) == 0.
func levelsFor(maxKey uint64, s uint) int {
	levels := 1
	for (maxKey >> (uint(levels) * s)) != 0 {
		levels++
	}
	return levels
}

func layerSize(nd *node, bitmaskWidth, pointerWidth, valueWidth int) int {
	if nd.isLeaf {
		return bitmaskWidth + len(nd.values)*valueWidth
	}
	return bitmaskWidth + len(nd.childIdx)*pointerWidth
}

// choosePointerWidth picks the smallest P in {1,2,3,4} whose addressable
// space (2^8P) can hold the total body size at that width. Every non-root
// node has exactly one incoming pointer, so the total pointer count across
// the whole trie is len(nodes)-1 regardless of shape.
func choosePointerWidth(nodes []*node, bitmaskWidth, valueWidth, keyCount int) (int, error) {
	nodeCount := len(nodes)
	baseSize := uint64(nodeCount)*uint64(bitmaskWidth) + uint64(keyCount)*uint64(valueWidth)
	pointerCount := uint64(nodeCount - 1)

	for p := format.MinPointerWidth; p <= format.MaxPointerWidth; p++ {
		total := baseSize + pointerCount*uint64(p)
		capacity := uint64(1) << (8 * uint(p))
		if total <= capacity {
			return p, nil
		}
	}
	return 0, format.ErrAddressSpace
}
