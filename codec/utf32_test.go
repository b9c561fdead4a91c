package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unitext/unicodec"
)

func drainUTF32(t *testing.T, input []uint32) []Result {
	t.Helper()
	c := NewUTF32()
	src := unicodec.NewSliceSource(input)
	var results []Result
	for {
		res := c.Decode(src)
		if res.Kind == KindEmptyInput {
			return results
		}
		results = append(results, res)
		if len(results) > len(input)+1 {
			t.Fatalf("decode did not terminate after %d steps", len(results))
		}
	}
}

func TestUTF32Decode(t *testing.T) {
	tests := []struct {
		name  string
		input []uint32
		want  []Result
	}{
		{"empty", nil, nil},
		{"ascii", []uint32{0x41}, []Result{scalar(0x41)}},
		{"bmp", []uint32{0x20AC}, []Result{scalar(0x20AC)}},
		{"supplementary", []uint32{0x1F600}, []Result{scalar(0x1F600)}},
		{"max scalar", []uint32{0x10FFFF}, []Result{scalar(0x10FFFF)}},
		{"nul", []uint32{0}, []Result{scalar(0)}},

		{"lead surrogate", []uint32{0xD800}, []Result{bad(1)}},
		{"trail surrogate", []uint32{0xDFFF}, []Result{bad(1)}},
		{"above max", []uint32{0x110000}, []Result{bad(1)}},
		{"way above max", []uint32{0xFFFFFFFF}, []Result{bad(1)}},
		{"error recovery", []uint32{0x41, 0xD800, 0x42},
			[]Result{scalar(0x41), bad(1), scalar(0x42)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drainUTF32(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decode steps mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUTF32Encode(t *testing.T) {
	c := NewUTF32()
	for _, v := range []uint32{0, 0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF} {
		var got []uint32
		c.Encode(unicodec.Trusted(v), func(u uint32) { got = append(got, u) })
		if len(got) != 1 || got[0] != v {
			t.Errorf("Encode(%v) = %v, want [%#x]", unicodec.Trusted(v), got, v)
		}
	}
}

func TestUTF32RoundTripAllScalars(t *testing.T) {
	c := NewUTF32()
	src := unicodec.NewSliceSource[uint32](nil)
	buf := make([]uint32, 0, 1)

	for v := uint32(0); v <= uint32(unicodec.Max); v++ {
		if unicodec.IsSurrogate(v) {
			continue
		}
		s := unicodec.Trusted(v)

		buf = buf[:0]
		c.Encode(s, func(u uint32) { buf = append(buf, u) })

		src.Reset(buf)
		res := c.Decode(src)
		if res.Kind != KindScalar || res.Scalar != s {
			t.Fatalf("%v: round trip = %+v", s, res)
		}
	}
}
