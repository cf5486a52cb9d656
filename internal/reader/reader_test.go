package reader

import (
	"testing"

	"github.com/joshuapare/hamtidx/internal/builder"
)

func build(t *testing.T, keys []uint64, values [][]byte, cfg builder.Config) *Reader {
	t.Helper()
	data, err := builder.Build(keys, values, cfg)
	if err != nil {
		t.Fatalf("builder.Build: %v", err)
	}
	r, err := Open(data)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return r
}

func TestOpenEmptyBufferAlwaysMisses(t *testing.T) {
	r, err := Open(nil)
	if err != nil {
		t.Fatalf("Open(nil): %v", err)
	}
	if r.Exists(0) {
		t.Fatalf("empty reader must report every key as missing")
	}
	if _, ok := r.Value(0); ok {
		t.Fatalf("empty reader must never resolve a value")
	}
}

func TestSingleKeyRoundTrip(t *testing.T) {
	r := build(t, []uint64{0x00}, [][]byte{{0x2A}}, builder.Config{BitmaskWidth: 1, ValueWidth: 1})
	v, ok := r.Value(0x00)
	if !ok || v[0] != 0x2A {
		t.Fatalf("Value(0) = %v, %v, want [0x2A], true", v, ok)
	}
	if r.Exists(0x01) {
		t.Fatalf("key 1 must miss")
	}
}

func TestTwoKeysHighSliceSplit(t *testing.T) {
	r := build(t, []uint64{0x00, 0x08}, [][]byte{{0xAA}, {0xBB}}, builder.Config{BitmaskWidth: 1, ValueWidth: 1})
	if v, ok := r.Value(0x00); !ok || v[0] != 0xAA {
		t.Fatalf("get(0) = %v,%v want 0xAA,true", v, ok)
	}
	if v, ok := r.Value(0x08); !ok || v[0] != 0xBB {
		t.Fatalf("get(8) = %v,%v want 0xBB,true", v, ok)
	}
	if r.Exists(0x01) || r.Exists(0x09) {
		t.Fatalf("keys 1 and 9 must miss")
	}
}

func TestDenseLeaf(t *testing.T) {
	keys := make([]uint64, 8)
	values := make([][]byte, 8)
	for i := range keys {
		keys[i] = uint64(i)
		values[i] = []byte{byte(i)}
	}
	r := build(t, keys, values, builder.Config{BitmaskWidth: 1, ValueWidth: 1})
	for i := 0; i < 8; i++ {
		v, ok := r.Value(uint64(i))
		if !ok || v[0] != byte(i) {
			t.Fatalf("get(%d) = %v,%v want %d,true", i, v, ok, i)
		}
	}
	if r.Exists(8) {
		t.Fatalf("key 8 is out of range and must miss")
	}
}

func TestOutOfRangeGuard(t *testing.T) {
	r := build(t, []uint64{0x00, 0x08}, [][]byte{{0xAA}, {0xBB}}, builder.Config{BitmaskWidth: 1, ValueWidth: 1})
	if r.Exists(0xFFFFFFFFFFFFFFFF) {
		t.Fatalf("a key far beyond the trie's covered bit range must miss")
	}
}

func TestHeaderRecoverability(t *testing.T) {
	r := build(t, []uint64{1, 32, 33}, [][]byte{
		{0x00, 0x00, 0x80, 0x3F},
		{0x00, 0x00, 0x00, 0x40},
		{0x00, 0x00, 0x40, 0x40},
	}, builder.Config{BitmaskWidth: 4, ValueWidth: 4})

	h := r.Header()
	if h.Levels != 2 || h.BitmaskWidth != 4 || h.PointerWidth != 1 || h.ValueWidth != 4 {
		t.Fatalf("header = %+v, want {Levels:2 BitmaskWidth:4 PointerWidth:1 ValueWidth:4}", h)
	}
	v, ok := r.Value(33)
	if !ok {
		t.Fatalf("get(33) missed")
	}
	want := []byte{0x00, 0x00, 0x40, 0x40}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("get(33) = % x, want % x", v, want)
		}
	}
}

func TestMissCompletenessSelectedKeys(t *testing.T) {
	keys := []uint64{10, 20, 30, 40, 50}
	values := make([][]byte, len(keys))
	for i := range keys {
		values[i] = []byte{byte(i + 1)}
	}
	r := build(t, keys, values, builder.Config{BitmaskWidth: 1, ValueWidth: 1})
	for _, miss := range []uint64{0, 5, 15, 25, 35, 45, 55, 1000} {
		if r.Exists(miss) {
			t.Fatalf("key %d should not exist", miss)
		}
		def := []byte{0xFF}
		v, ok := r.Value(miss)
		if ok {
			t.Fatalf("key %d resolved a value %v, want miss", miss, v)
		}
		_ = def
	}
}
