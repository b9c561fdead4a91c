package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unitext/unicodec"
)

// drainUTF8 decodes all of input, one Result per decode step.
func drainUTF8(t *testing.T, input []byte) []Result {
	t.Helper()
	c := NewUTF8()
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

func scalar(v uint32) Result {
	return Result{Scalar: unicodec.Trusted(v), Kind: KindScalar}
}

func bad(skip int) Result {
	return Result{Skip: skip, Kind: KindIllFormed}
}

func TestUTF8Decode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  []Result
	}{
		{"empty", nil, nil},
		{"ascii", []byte{0x41}, []Result{scalar(0x41)}},
		{"ascii run", []byte("Go!"), []Result{scalar('G'), scalar('o'), scalar('!')}},
		{"two byte", []byte{0xC3, 0xA9}, []Result{scalar(0xE9)}},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, []Result{scalar(0x20AC)}},
		{"four byte", []byte{0xF0, 0x9F, 0x98, 0x80}, []Result{scalar(0x1F600)}},
		{"mixed widths", []byte("aé€😀"),
			[]Result{scalar('a'), scalar(0xE9), scalar(0x20AC), scalar(0x1F600)}},

		{"boundary U+0080", []byte{0xC2, 0x80}, []Result{scalar(0x80)}},
		{"boundary U+07FF", []byte{0xDF, 0xBF}, []Result{scalar(0x7FF)}},
		{"boundary U+0800", []byte{0xE0, 0xA0, 0x80}, []Result{scalar(0x800)}},
		{"boundary U+D7FF", []byte{0xED, 0x9F, 0xBF}, []Result{scalar(0xD7FF)}},
		{"boundary U+E000", []byte{0xEE, 0x80, 0x80}, []Result{scalar(0xE000)}},
		{"boundary U+FFFF", []byte{0xEF, 0xBF, 0xBF}, []Result{scalar(0xFFFF)}},
		{"boundary U+10000", []byte{0xF0, 0x90, 0x80, 0x80}, []Result{scalar(0x10000)}},
		{"boundary U+10FFFF", []byte{0xF4, 0x8F, 0xBF, 0xBF}, []Result{scalar(0x10FFFF)}},

		{"overlong nul", []byte{0xC0, 0x80}, []Result{bad(1), bad(1)}},
		{"overlong C1", []byte{0xC1, 0xBF}, []Result{bad(1), bad(1)}},
		{"overlong three byte", []byte{0xE0, 0x9F, 0xBF}, []Result{bad(1), bad(1), bad(1)}},
		{"overlong four byte", []byte{0xF0, 0x8F, 0xBF, 0xBF}, []Result{bad(1), bad(1), bad(1), bad(1)}},
		{"surrogate low bound", []byte{0xED, 0xA0, 0x80}, []Result{bad(1), bad(1), bad(1)}},
		{"surrogate high bound", []byte{0xED, 0xBF, 0xBF}, []Result{bad(1), bad(1), bad(1)}},
		{"beyond code space", []byte{0xF4, 0x90, 0x80, 0x80}, []Result{bad(1), bad(1), bad(1), bad(1)}},
		{"F5 lead", []byte{0xF5, 0x80, 0x80, 0x80}, []Result{bad(1), bad(1), bad(1), bad(1)}},
		{"F8 lead", []byte{0xF8}, []Result{bad(1)}},
		{"FF", []byte{0xFF}, []Result{bad(1)}},
		{"stray continuation", []byte{0x80}, []Result{bad(1)}},

		{"bad second byte", []byte{0xC2, 0x41}, []Result{bad(1), scalar(0x41)}},
		{"bad third byte", []byte{0xE1, 0x80, 0x41}, []Result{bad(2), scalar(0x41)}},
		{"bad fourth byte", []byte{0xF1, 0x80, 0x80, 0x41}, []Result{bad(3), scalar(0x41)}},
		{"truncated two byte", []byte{0xC2}, []Result{bad(1)}},
		{"truncated three byte", []byte{0xE1, 0x80}, []Result{bad(2)}},
		{"truncated four byte", []byte{0xF1, 0x80, 0x80}, []Result{bad(3)}},

		// The maximal-subpart example from the Unicode standard: each
		// ill-formed subsequence is skipped as a whole, never byte by
		// byte and never past the first structurally invalid byte.
		{"maximal subparts", []byte{0x61, 0xF1, 0x80, 0x80, 0xE1, 0x80, 0xC2, 0x62},
			[]Result{scalar(0x61), bad(3), bad(2), bad(1), scalar(0x62)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drainUTF8(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("decode steps mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUTF8EmptyInputSticky(t *testing.T) {
	c := NewUTF8()
	src := unicodec.NewSliceSource([]byte{0x41})
	c.Decode(src)
	for i := 0; i < 3; i++ {
		if res := c.Decode(src); res.Kind != KindEmptyInput {
			t.Fatalf("Decode after end = %+v, want empty input", res)
		}
	}
}

func TestUTF8Reset(t *testing.T) {
	c := NewUTF8()
	src := unicodec.NewSliceSource([]byte{0xF0, 0x9F})

	if res := c.Decode(src); res.Kind != KindIllFormed || res.Skip != 2 {
		t.Fatalf("Decode truncated = %+v, want ill-formed skip 2", res)
	}

	c.Reset()
	src.Reset([]byte{0x41})
	if res := c.Decode(src); res.Kind != KindScalar || res.Scalar != 0x41 {
		t.Fatalf("Decode after Reset = %+v, want U+0041", res)
	}
}

func TestUTF8Encode(t *testing.T) {
	tests := []struct {
		scalar uint32
		want   []byte
	}{
		{0x0000, []byte{0x00}},
		{0x0041, []byte{0x41}},
		{0x007F, []byte{0x7F}},
		{0x0080, []byte{0xC2, 0x80}},
		{0x00E9, []byte{0xC3, 0xA9}},
		{0x07FF, []byte{0xDF, 0xBF}},
		{0x0800, []byte{0xE0, 0xA0, 0x80}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0xFFFD, []byte{0xEF, 0xBF, 0xBD}},
		{0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{0x10000, []byte{0xF0, 0x90, 0x80, 0x80}},
		{0x1F600, []byte{0xF0, 0x9F, 0x98, 0x80}},
		{0x10FFFF, []byte{0xF4, 0x8F, 0xBF, 0xBF}},
	}

	c := NewUTF8()
	for _, tt := range tests {
		var got []byte
		c.Encode(unicodec.Trusted(tt.scalar), func(b byte) { got = append(got, b) })
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Encode(%v) mismatch (-want +got):\n%s", unicodec.Trusted(tt.scalar), diff)
		}
	}
}

func TestUTF8RoundTripAllScalars(t *testing.T) {
	c := NewUTF8()
	src := unicodec.NewSliceSource[byte](nil)
	buf := make([]byte, 0, 4)

	for v := uint32(0); v <= uint32(unicodec.Max); v++ {
		if unicodec.IsSurrogate(v) {
			continue
		}
		s := unicodec.Trusted(v)

		buf = buf[:0]
		c.Encode(s, func(b byte) { buf = append(buf, b) })
		if len(buf) != s.UTF8Width() {
			t.Fatalf("%v: encoded %d bytes, want %d", s, len(buf), s.UTF8Width())
		}

		c.Reset()
		src.Reset(buf)
		res := c.Decode(src)
		if res.Kind != KindScalar || res.Scalar != s {
			t.Fatalf("%v: round trip = %+v", s, res)
		}
		if res := c.Decode(src); res.Kind != KindEmptyInput {
			t.Fatalf("%v: trailing result %+v", s, res)
		}
	}
}

func TestUTF8LeadClass(t *testing.T) {
	for b := uint32(0x80); b <= 0xFF; b++ {
		var want uint32
		switch {
		case b < 0xC0:
			want = 0 // continuation bytes cannot lead
		case b < 0xE0:
			want = 1
		case b < 0xF0:
			want = 2
		case b < 0xF8:
			want = 3
		default:
			want = 0 // F8..FF are never valid
		}
		if got := leadClass(b); got != want {
			t.Errorf("leadClass(%#x) = %d, want %d", b, got, want)
		}
	}
}
