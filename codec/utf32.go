package codec

import "github.com/unitext/unicodec"

// UTF32 is the codec for the UTF-32 encoding form. Every unit is decoded
// on its own, so the codec holds no state.
type UTF32 struct{}

// NewUTF32 returns a UTF-32 codec.
func NewUTF32() *UTF32 {
	return &UTF32{}
}

// String returns the encoding form name.
func (c *UTF32) String() string { return "UTF-32" }

// Reset is a no-op; the codec is stateless.
func (c *UTF32) Reset() {}

// Decode consumes one unit from src. A unit is well-formed iff it is a
// scalar value: at most 0x10FFFF and not a surrogate.
func (c *UTF32) Decode(src unicodec.Source[uint32]) Result {
	u, ok := src.Next()
	if !ok {
		return emptyResult
	}
	if u > uint32(unicodec.Max) || unicodec.IsSurrogate(u) {
		return illFormed(1)
	}
	return scalarResult(unicodec.Trusted(u))
}

// Encode emits s unchanged.
func (c *UTF32) Encode(s unicodec.Scalar, emit func(uint32)) {
	emit(uint32(s))
}
