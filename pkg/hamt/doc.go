/*
Package hamt builds and reads a compact, read-optimized static index
mapping 64-bit unsigned integer keys to fixed-width values. It is a
Hash Array Mapped Trie serialized as one contiguous byte buffer: build
once from sorted keys, then perform allocation-free point lookups
directly against the bytes.

# Quick Start

Build an index and look values back up:

	b, err := hamt.NewBuilder(hamt.Options{BitmaskWidth: 1, ValueWidth: 8})
	if err != nil {
	    return err
	}
	data, err := b.Dump(
	    []uint64{10, 20, 30},
	    [][]byte{hamt.Uint64Value(100), hamt.Uint64Value(200), hamt.Uint64Value(300)},
	)
	if err != nil {
	    return err
	}

	r, err := hamt.NewReader(data)
	if err != nil {
	    return err
	}
	v := hamt.AsUint64(r.Get(20, hamt.Uint64Value(0))) // 200

# Features

  - Single-pass builder: O(n·L) time, no child search, no recursion
  - Zero-copy reader: lookups touch only the bitmasks and pointers on
    the path to the key, never materializing trie nodes
  - Minimal on-disk footprint: builder picks the smallest pointer width
    that addresses the whole buffer
  - Fixed-width value helpers for the common scalar types, all little-endian

# What this package does not do

Keys are presented pre-sorted by the caller; there is no iteration or
range-scan API, no support for variable-width values, and no file I/O —
callers own reading and writing the buffer. A Builder and the buffers it
produces are not safe for concurrent use by multiple goroutines during a
single Dump; a constructed Reader is immutable and safe for concurrent
reads.

# Error Handling

Construction errors are returned synchronously from NewBuilder, Dump, and
NewReader as a *hamt.Error with a classifiable Kind:

	data, err := b.Dump(keys, values)
	var herr *hamt.Error
	if errors.As(err, &herr) && herr.Kind == hamt.ErrKindKeyOrder {
	    // keys were not strictly ascending
	}

Point lookups never error: Exists and Get report misses by returning
false or the caller-supplied default, respectively.
*/
package hamt
