// Package chunk converts UTF-16 to UTF-8 in packed fixed-size units,
// amortizing per-scalar dispatch for bulk string conversion. Unpaired
// surrogates are replaced inline with U+FFFD.
package chunk

import (
	"encoding/binary"

	"github.com/unitext/unicodec"
)

// Size is the number of bytes a Chunk carries.
const Size = 8

// Fill pads the unused tail of a partially filled Chunk. 0xFF can never
// begin or continue a well-formed UTF-8 sequence, so consumers scanning
// chunk bytes can treat it as an unambiguous stop sentinel. The exact
// value is part of the contract.
const Fill byte = 0xFF

// Chunk holds up to Size UTF-8 bytes packed little-endian: output byte
// k occupies bits 8k through 8k+7. Bytes past the meaningful count are
// Fill.
type Chunk uint64

const emptyChunk = ^Chunk(0)

// Len returns the number of meaningful bytes in the chunk.
func (c Chunk) Len() int {
	for i := 0; i < Size; i++ {
		if byte(c>>(8*i)) == Fill {
			return i
		}
	}
	return Size
}

// Bytes unpacks the chunk into output order and returns the meaningful
// byte count. Bytes at or past the count hold Fill.
func (c Chunk) Bytes() ([Size]byte, int) {
	var b [Size]byte
	binary.LittleEndian.PutUint64(b[:], uint64(c))
	return b, c.Len()
}

// AppendTo appends the chunk's meaningful bytes to dst.
func (c Chunk) AppendTo(dst []byte) []byte {
	b, n := c.Bytes()
	return append(dst, b[:n]...)
}

// Full reports whether every byte in the chunk is meaningful.
func (c Chunk) Full() bool {
	return c.Len() == Size
}

// Empty reports whether the chunk carries no bytes.
func (c Chunk) Empty() bool {
	return byte(c) == Fill
}

// scalarAt reads the logical unit starting at src[i]. Unpaired
// surrogates yield U+FFFD. The second result is the number of UTF-16
// units consumed, 1 or 2.
func scalarAt(src []uint16, i int) (unicodec.Scalar, int) {
	u := src[i]
	if !unicodec.IsLeadSurrogate(u) {
		if unicodec.IsTrailSurrogate(u) {
			return unicodec.ReplacementChar, 1
		}
		return unicodec.Trusted(uint32(u)), 1
	}
	if i+1 < len(src) && unicodec.IsTrailSurrogate(src[i+1]) {
		return unicodec.CombineSurrogates(u, src[i+1]), 2
	}
	return unicodec.ReplacementChar, 1
}

// utf8Word returns the UTF-8 encoding of s packed little-endian into
// the low bytes of a word, plus its length in bytes.
func utf8Word(s unicodec.Scalar) (uint64, int) {
	v := uint64(s)
	switch {
	case v < 0x80:
		return v, 1
	case v < 0x800:
		return 0xC0 | v>>6 |
			(0x80|v&0x3F)<<8, 2
	case v < 0x10000:
		return 0xE0 | v>>12 |
			(0x80|v>>6&0x3F)<<8 |
			(0x80|v&0x3F)<<16, 3
	default:
		return 0xF0 | v>>18 |
			(0x80|v>>12&0x3F)<<8 |
			(0x80|v>>6&0x3F)<<16 |
			(0x80|v&0x3F)<<24, 4
	}
}

// Encode converts src starting at index start into one chunk. A scalar
// whose encoding does not fit in the remaining space is deferred whole
// to the next call, never split across chunks. It returns the index at
// which the next call should resume; next == len(src) means the input
// is exhausted.
func Encode(src []uint16, start int) (next int, c Chunk) {
	var data uint64
	pos := 0
	i := start
	for i < len(src) && pos < Size {
		s, consumed := scalarAt(src, i)
		w, n := utf8Word(s)
		if pos+n > Size {
			break
		}
		data |= w << (8 * pos)
		pos += n
		i += consumed
	}
	if pos < Size {
		data |= uint64(emptyChunk) << (8 * pos)
	}
	return i, Chunk(data)
}

// Append converts all of src and appends its UTF-8 encoding to dst.
func Append(dst []byte, src []uint16) []byte {
	for i := 0; i < len(src); {
		var c Chunk
		i, c = Encode(src, i)
		dst = c.AppendTo(dst)
	}
	return dst
}
