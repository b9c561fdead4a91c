package codec

import "github.com/unitext/unicodec"

// Codec converts between the code units of one encoding form and scalar
// values. The set of implementations is closed: UTF8, UTF16, and UTF32.
type Codec[U unicodec.CodeUnit] interface {
	// Decode consumes code units from src and returns the next decode
	// outcome. It is stateful: a codec instance must be paired with
	// exactly one source for its lifetime, and callers must keep
	// calling Decode until it reports KindEmptyInput.
	Decode(src unicodec.Source[U]) Result

	// Encode emits the code units encoding s, in output order, through
	// emit. Encoding a valid scalar never fails.
	Encode(s unicodec.Scalar, emit func(U))

	// Reset returns the codec to its initial state so it can decode a
	// new source.
	Reset()
}

var (
	_ Codec[byte]   = (*UTF8)(nil)
	_ Codec[uint16] = (*UTF16)(nil)
	_ Codec[uint32] = (*UTF32)(nil)
)
