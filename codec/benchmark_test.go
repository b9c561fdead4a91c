package codec

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/unitext/unicodec"
)

var (
	benchASCII = []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 32))
	benchMixed = []byte(strings.Repeat("héllo wörld €\U0001F600 ", 64))
)

func benchmarkUTF8Decode(b *testing.B, input []byte) {
	c := NewUTF8()
	src := unicodec.NewSliceSource(input)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset()
		src.Reset(input)
		for {
			if res := c.Decode(src); res.Kind == KindEmptyInput {
				break
			}
		}
	}
}

func BenchmarkUTF8DecodeASCII(b *testing.B) { benchmarkUTF8Decode(b, benchASCII) }

func BenchmarkUTF8DecodeMixed(b *testing.B) { benchmarkUTF8Decode(b, benchMixed) }

func BenchmarkUTF16Decode(b *testing.B) {
	units := utf16.Encode([]rune(string(benchMixed)))
	c := NewUTF16()
	src := unicodec.NewSliceSource(units)
	b.SetBytes(int64(len(units) * 2))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Reset()
		src.Reset(units)
		for {
			if res := c.Decode(src); res.Kind == KindEmptyInput {
				break
			}
		}
	}
}

func BenchmarkUTF8Encode(b *testing.B) {
	scalars := []rune(string(benchMixed))
	c := NewUTF8()
	n := 0
	sink := func(byte) { n++ }
	b.SetBytes(int64(len(benchMixed)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, r := range scalars {
			c.Encode(unicodec.Trusted(uint32(r)), sink)
		}
	}
}
