package hamt

// Options configures the bitmask and value widths a Builder uses for one
// Dump call. Both widths must be one of 1, 2, 4, or 8 bytes.
type Options struct {
	// BitmaskWidth is B, the number of bytes in each layer's bitmask.
	// Fan-out is 8*B children per layer. Default: 1 (fan-out 8).
	BitmaskWidth int

	// ValueWidth is W, the fixed byte width of every value in the build.
	// Default: 8 (fits a uint64, int64, or float64).
	ValueWidth int
}

// DefaultOptions returns {BitmaskWidth: 1, ValueWidth: 8}: the smallest
// fan-out per layer and a value width wide enough for any scalar type.
func DefaultOptions() Options {
	return Options{BitmaskWidth: 1, ValueWidth: 8}
}
