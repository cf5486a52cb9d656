package builder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joshuapare/hamtidx/internal/format"
)

func TestBuildEmptyInput(t *testing.T) {
	got, err := Build(nil, nil, Config{BitmaskWidth: 1, ValueWidth: 1})
	if err != nil {
		t.Fatalf("Build(empty): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Build(empty) = % x, want empty", got)
	}
}

func TestBuildSingleKeyWorkedExample(t *testing.T) {
	got, err := Build([]uint64{0x00}, [][]byte{{0x2A}}, Config{BitmaskWidth: 1, ValueWidth: 1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []byte{0x01, 0x00, 0x01, 0x2A}
	if !bytes.Equal(got, want) {
		t.Fatalf("Build = % x, want % x", got, want)
	}
}

func TestBuildTwoKeysHighSliceSplit(t *testing.T) {
	got, err := Build(
		[]uint64{0x00, 0x08},
		[][]byte{{0xAA}, {0xBB}},
		Config{BitmaskWidth: 1, ValueWidth: 1},
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := []byte{0x02, 0x00, 0x03, 0x03, 0x05, 0x01, 0xAA, 0x01, 0xBB}
	if !bytes.Equal(got, want) {
		t.Fatalf("Build = % x, want % x", got, want)
	}
}

func TestBuildDenseLeaf(t *testing.T) {
	keys := make([]uint64, 8)
	values := make([][]byte, 8)
	for i := range keys {
		keys[i] = uint64(i)
		values[i] = []byte{byte(i)}
	}
	got, err := Build(keys, values, Config{BitmaskWidth: 1, ValueWidth: 1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := append([]byte{0x01, 0x00, 0xFF}, values[0][0], values[1][0], values[2][0], values[3][0], values[4][0], values[5][0], values[6][0], values[7][0])
	if !bytes.Equal(got, want) {
		t.Fatalf("Build = % x, want % x", got, want)
	}
}

func TestBuildRejectsNonAscendingKeys(t *testing.T) {
	_, err := Build([]uint64{2, 1}, [][]byte{{1}, {1}}, Config{BitmaskWidth: 1, ValueWidth: 1})
	if !errors.Is(err, format.ErrKeyOrder) {
		t.Fatalf("expected ErrKeyOrder, got %v", err)
	}
	_, err = Build([]uint64{1, 1}, [][]byte{{1}, {1}}, Config{BitmaskWidth: 1, ValueWidth: 1})
	if !errors.Is(err, format.ErrKeyOrder) {
		t.Fatalf("expected ErrKeyOrder for duplicate key, got %v", err)
	}
}

func TestBuildRejectsValueWidthMismatch(t *testing.T) {
	_, err := Build([]uint64{1}, [][]byte{{1, 2}}, Config{BitmaskWidth: 1, ValueWidth: 1})
	if !errors.Is(err, format.ErrValueWidth) {
		t.Fatalf("expected ErrValueWidth, got %v", err)
	}
}

func TestBuildPointerWidthPromotion(t *testing.T) {
	// force enough distinct leaves that the total body exceeds 256 bytes,
	// promoting the pointer width from P=1 to P=2.
	n := 200
	keys := make([]uint64, n)
	values := make([][]byte, n)
	for i := 0; i < n; i++ {
		keys[i] = uint64(i) * 8 // every key lands in a distinct leaf (slice 0)
		values[i] = []byte{byte(i)}
	}
	data, err := Build(keys, values, Config{BitmaskWidth: 1, ValueWidth: 1})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	hdr, err := format.ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.PointerWidth != 2 {
		t.Fatalf("PointerWidth = %d, want 2 (body size %d bytes)", hdr.PointerWidth, len(data)-format.HeaderSize)
	}
}

func TestBuildFourByteFloats(t *testing.T) {
	keys := []uint64{1, 32, 33}
	values := [][]byte{
		{0x00, 0x00, 0x80, 0x3F}, // 1.0f
		{0x00, 0x00, 0x00, 0x40}, // 2.0f
		{0x00, 0x00, 0x40, 0x40}, // 3.0f
	}
	data, err := Build(keys, values, Config{BitmaskWidth: 4, ValueWidth: 4})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	hdr, err := format.ParseHeader(data)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if hdr.Levels != 2 {
		t.Fatalf("Levels = %d, want 2", hdr.Levels)
	}
	if hdr.BitmaskWidth != 4 || hdr.ValueWidth != 4 {
		t.Fatalf("widths = %d/%d, want 4/4", hdr.BitmaskWidth, hdr.ValueWidth)
	}
}
