package unicodec

import (
	"fmt"

	"github.com/unitext/unicodec/errors"
)

// Scalar is a validated Unicode scalar value: a code point in
// [0, 0x10FFFF] excluding the surrogate range [0xD800, 0xDFFF].
// The zero value is U+0000.
type Scalar uint32

const (
	// Max is the largest scalar value, U+10FFFF.
	Max Scalar = 0x10FFFF

	// ReplacementChar is U+FFFD, substituted for ill-formed input when a
	// caller requests repair.
	ReplacementChar Scalar = 0xFFFD
)

const (
	surrogateMin      = 0xD800
	trailSurrogateMin = 0xDC00
	surrogateMax      = 0xDFFF

	// Smallest scalar that needs a surrogate pair in UTF-16.
	supplementaryMin = 0x10000
)

// New validates v and returns it as a Scalar. It fails for surrogate
// values and for values above Max.
func New(v uint32) (Scalar, error) {
	if IsSurrogate(v) || v > uint32(Max) {
		return 0, errors.InvalidScalar(v)
	}
	return Scalar(v), nil
}

// Trusted returns v as a Scalar without validation. The caller must
// guarantee that v is a scalar value; decoders use it after performing
// their own range checks.
func Trusted(v uint32) Scalar {
	return Scalar(v)
}

// IsASCII reports whether s is in the ASCII range [0, 0x7F].
func (s Scalar) IsASCII() bool { return s <= 0x7F }

// UTF16Width returns the number of UTF-16 code units that encode s:
// 1 within the Basic Multilingual Plane, 2 above it.
func (s Scalar) UTF16Width() int {
	if s < supplementaryMin {
		return 1
	}
	return 2
}

// UTF8Width returns the number of bytes in the UTF-8 encoding of s,
// from 1 to 4.
func (s Scalar) UTF8Width() int {
	switch {
	case s < 0x80:
		return 1
	case s < 0x800:
		return 2
	case s < supplementaryMin:
		return 3
	default:
		return 4
	}
}

// String formats s in the conventional U+XXXX form, using at least four
// hex digits.
func (s Scalar) String() string {
	return fmt.Sprintf("U+%04X", uint32(s))
}
