package codec

import "github.com/unitext/unicodec"

// utf8LeadClass packs a 2-bit sequence class for each of the 32 values of
// a lead byte's top five bits: the number of continuation bytes that must
// follow (1 for C0..DF, 2 for E0..EF, 3 for F0..F7), or 0 for bytes that
// cannot lead a multi-byte sequence. Overlong encodings, surrogates, and
// values beyond the code space are rejected by the per-class second-byte
// checks in decodeOne.
const utf8LeadClass uint64 = 0x3A55_0000_0000_0000

func leadClass(b uint32) uint32 {
	return uint32(utf8LeadClass>>(2*(b>>3))) & 0x3
}

func isCont(b uint32) bool { return b&0xC0 == 0x80 }

// UTF8 is the codec for the UTF-8 encoding form.
//
// Decoding buffers up to four bytes in a 32-bit register. Bytes enter at
// the most significant free position and are consumed from the least
// significant end, so the register holds the upcoming bytes of the stream
// packed little-endian and the structural checks become integer mask
// tests instead of per-byte branches. The register is zero beyond its
// valid bits; 0x00 never passes a continuation check, so sequences
// truncated by end of input fall out with the right maximal-subpart
// length with no special casing.
type UTF8 struct {
	buf   uint32
	bits  uint32
	atEnd bool
}

// NewUTF8 returns a UTF-8 codec in its initial state.
func NewUTF8() *UTF8 {
	return &UTF8{}
}

// String returns the encoding form name.
func (c *UTF8) String() string { return "UTF-8" }

// Reset returns the codec to its initial state.
func (c *UTF8) Reset() {
	*c = UTF8{}
}

// Decode consumes bytes from src and returns the next decode outcome.
func (c *UTF8) Decode(src unicodec.Source[byte]) Result {
	if c.bits == 0 {
		if c.atEnd {
			return emptyResult
		}
		b, ok := src.Next()
		if !ok {
			c.atEnd = true
			return emptyResult
		}
		// Fast path: nothing buffered and the next byte is ASCII.
		if b < 0x80 {
			return scalarResult(unicodec.Trusted(uint32(b)))
		}
		c.buf = uint32(b)
		c.bits = 8
	}

	// Top the register up to four bytes or to end of input.
	for c.bits < 32 && !c.atEnd {
		b, ok := src.Next()
		if !ok {
			c.atEnd = true
			break
		}
		c.buf |= uint32(b) << c.bits
		c.bits += 8
	}

	n, res := c.decodeOne()
	c.buf >>= 8 * n
	c.bits -= 8 * n
	return res
}

// decodeOne decodes one sequence from the low end of the register and
// reports how many bytes it consumed: the sequence length on success, the
// maximal-subpart length on failure.
func (c *UTF8) decodeOne() (n uint32, _ Result) {
	lead := c.buf & 0xFF
	if lead < 0x80 {
		return 1, scalarResult(unicodec.Trusted(lead))
	}

	switch leadClass(lead) {
	case 1: // C0..DF: one continuation byte
		if c.buf&0xC0E0 != 0x80C0 {
			return 1, illFormed(1)
		}
		if c.buf&0x1E == 0 {
			// C0 and C1 would encode seven-bit values: overlong.
			return 1, illFormed(1)
		}
		v := (c.buf&0x1F)<<6 | (c.buf>>8)&0x3F
		return 2, scalarResult(unicodec.Trusted(v))

	case 2: // E0..EF: two continuation bytes
		c1 := (c.buf >> 8) & 0xFF
		lo, hi := uint32(0x80), uint32(0xBF)
		switch lead {
		case 0xE0:
			lo = 0xA0 // below A0 is overlong
		case 0xED:
			hi = 0x9F // above 9F encodes surrogates
		}
		if c1 < lo || c1 > hi {
			return 1, illFormed(1)
		}
		if !isCont((c.buf >> 16) & 0xFF) {
			return 2, illFormed(2)
		}
		v := (c.buf&0x0F)<<12 | (c1&0x3F)<<6 | (c.buf>>16)&0x3F
		return 3, scalarResult(unicodec.Trusted(v))

	case 3: // F0..F7: three continuation bytes
		c1 := (c.buf >> 8) & 0xFF
		var lo, hi uint32
		switch lead {
		case 0xF0:
			lo, hi = 0x90, 0xBF // below 90 is overlong
		case 0xF4:
			lo, hi = 0x80, 0x8F // above 8F exceeds U+10FFFF
		case 0xF1, 0xF2, 0xF3:
			lo, hi = 0x80, 0xBF
		default:
			// F5..F7 only encode values beyond the code space.
			return 1, illFormed(1)
		}
		if c1 < lo || c1 > hi {
			return 1, illFormed(1)
		}
		if !isCont((c.buf >> 16) & 0xFF) {
			return 2, illFormed(2)
		}
		if !isCont((c.buf >> 24) & 0xFF) {
			return 3, illFormed(3)
		}
		v := (c.buf&0x07)<<18 | (c1&0x3F)<<12 | (c.buf>>16&0x3F)<<6 | (c.buf>>24)&0x3F
		return 4, scalarResult(unicodec.Trusted(v))
	}

	// Stray continuation byte or F8..FF.
	return 1, illFormed(1)
}

// Encode emits the 1-4 byte UTF-8 encoding of s.
func (c *UTF8) Encode(s unicodec.Scalar, emit func(byte)) {
	v := uint32(s)
	switch {
	case v < 0x80:
		emit(byte(v))
	case v < 0x800:
		emit(byte(0xC0 | v>>6))
		emit(byte(0x80 | v&0x3F))
	case v < 0x10000:
		emit(byte(0xE0 | v>>12))
		emit(byte(0x80 | v>>6&0x3F))
		emit(byte(0x80 | v&0x3F))
	default:
		emit(byte(0xF0 | v>>18))
		emit(byte(0x80 | v>>12&0x3F))
		emit(byte(0x80 | v>>6&0x3F))
		emit(byte(0x80 | v&0x3F))
	}
}
