package unicodec_test

import (
	"testing"

	"github.com/unitext/unicodec"
)

func TestSliceSource(t *testing.T) {
	src := unicodec.NewSliceSource([]uint16{1, 2, 3})

	for want := uint16(1); want <= 3; want++ {
		u, ok := src.Next()
		if !ok || u != want {
			t.Fatalf("Next() = (%d, %v), want (%d, true)", u, ok, want)
		}
	}

	// Exhaustion must be sticky.
	for i := 0; i < 3; i++ {
		if u, ok := src.Next(); ok || u != 0 {
			t.Fatalf("Next() after exhaustion = (%d, %v), want (0, false)", u, ok)
		}
	}
}

func TestSliceSourceEmpty(t *testing.T) {
	src := unicodec.NewSliceSource[byte](nil)
	if _, ok := src.Next(); ok {
		t.Error("Next() on empty source returned ok")
	}
}

func TestSliceSourceReset(t *testing.T) {
	src := unicodec.NewSliceSource([]byte{0x41, 0x42})
	src.Next()
	src.Reset([]byte{0x43})

	u, ok := src.Next()
	if !ok || u != 0x43 {
		t.Fatalf("Next() after Reset = (%#x, %v), want (0x43, true)", u, ok)
	}
	if _, ok := src.Next(); ok {
		t.Error("source not exhausted after Reset slice consumed")
	}
}

func TestSourceFunc(t *testing.T) {
	units := []uint32{7, 8}
	i := 0
	src := unicodec.SourceFunc[uint32](func() (uint32, bool) {
		if i >= len(units) {
			return 0, false
		}
		u := units[i]
		i++
		return u, true
	})

	if u, ok := src.Next(); !ok || u != 7 {
		t.Fatalf("Next() = (%d, %v), want (7, true)", u, ok)
	}
	if u, ok := src.Next(); !ok || u != 8 {
		t.Fatalf("Next() = (%d, %v), want (8, true)", u, ok)
	}
	if _, ok := src.Next(); ok {
		t.Error("Next() after exhaustion returned ok")
	}
}
