package stream

import (
	"encoding/binary"

	"golang.org/x/text/transform"

	"github.com/unitext/unicodec"
	"github.com/unitext/unicodec/codec"
	"github.com/unitext/unicodec/errors"
)

// transcoder converts bytes between two wire encodings one scalar at a
// time. Transform calls always start and end on a sequence boundary,
// so no decode state survives between calls and Reset is a no-op.
type transcoder struct {
	transform.NopResetter

	from, to  Encoding
	fromOrder binary.ByteOrder
	toOrder   binary.ByteOrder

	u8   codec.UTF8
	u16  codec.UTF16
	src8 unicodec.SliceSource[byte]

	err error
}

var _ transform.Transformer = (*transcoder)(nil)

// NewTranscoder returns a streaming transcoder between two wire
// encodings. Each ill-formed input sequence becomes U+FFFD in the
// output encoding. The transformer is not safe for concurrent use.
//
// An unknown Encoding value yields a transformer whose Transform
// always fails with an unsupported-conversion error.
func NewTranscoder(from, to Encoding) transform.Transformer {
	t := &transcoder{from: from, to: to}
	if from.Width() == 0 || to.Width() == 0 {
		t.err = errors.New(errors.PhaseTranscode, errors.KindUnsupported).
			Detail("no conversion from %s to %s", from, to).
			Build()
		return t
	}
	t.fromOrder = from.byteOrder()
	t.toOrder = to.byteOrder()
	return t
}

// Transform implements transform.Transformer.
func (t *transcoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if t.err != nil {
		return 0, 0, t.err
	}
	for nSrc < len(src) {
		s, size, ok := t.decodeOne(src[nSrc:], atEOF)
		if !ok {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst+t.encodedLen(s) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += t.encode(dst[nDst:], s)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// utf8Need returns how many bytes the sequence starting with lead may
// occupy. It can overestimate for invalid leads; the decoder settles
// the actual consumed count.
func utf8Need(lead byte) int {
	switch {
	case lead < 0xC0:
		return 1
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	case lead < 0xF8:
		return 4
	default:
		return 1
	}
}

// decodeOne decodes the next scalar from src in the source encoding,
// mapping ill-formed sequences to U+FFFD. A false ok means the bytes
// end mid-sequence and more input is needed. src must not be empty.
func (t *transcoder) decodeOne(src []byte, atEOF bool) (s unicodec.Scalar, size int, ok bool) {
	switch t.from {
	case UTF16LE, UTF16BE:
		if len(src) < 2 {
			if !atEOF {
				return 0, 0, false
			}
			return unicodec.ReplacementChar, len(src), true
		}
		u := t.fromOrder.Uint16(src)
		switch {
		case !unicodec.IsSurrogate(uint32(u)):
			return unicodec.Trusted(uint32(u)), 2, true
		case unicodec.IsTrailSurrogate(u):
			return unicodec.ReplacementChar, 2, true
		}
		if len(src) < 4 {
			if !atEOF {
				return 0, 0, false
			}
			return unicodec.ReplacementChar, 2, true
		}
		if trail := t.fromOrder.Uint16(src[2:]); unicodec.IsTrailSurrogate(trail) {
			return unicodec.CombineSurrogates(u, trail), 4, true
		}
		return unicodec.ReplacementChar, 2, true

	case UTF32LE, UTF32BE:
		if len(src) < 4 {
			if !atEOF {
				return 0, 0, false
			}
			return unicodec.ReplacementChar, len(src), true
		}
		v := t.fromOrder.Uint32(src)
		if v > uint32(unicodec.Max) || unicodec.IsSurrogate(v) {
			return unicodec.ReplacementChar, 4, true
		}
		return unicodec.Trusted(v), 4, true

	default: // UTF8
		need := utf8Need(src[0])
		if len(src) < need {
			if !atEOF {
				return 0, 0, false
			}
			need = len(src)
		}
		t.u8.Reset()
		t.src8.Reset(src[:need])
		res := t.u8.Decode(&t.src8)
		if res.Kind == codec.KindScalar {
			return res.Scalar, res.Scalar.UTF8Width(), true
		}
		return unicodec.ReplacementChar, res.Skip, true
	}
}

// encodedLen returns the byte length of s in the destination encoding.
func (t *transcoder) encodedLen(s unicodec.Scalar) int {
	switch t.to {
	case UTF16LE, UTF16BE:
		return s.UTF16Width() * 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return s.UTF8Width()
	}
}

// encode writes s to the front of dst in the destination encoding and
// returns the byte count. dst must have room for encodedLen(s) bytes.
func (t *transcoder) encode(dst []byte, s unicodec.Scalar) int {
	n := 0
	switch t.to {
	case UTF16LE, UTF16BE:
		t.u16.Encode(s, func(u uint16) {
			t.toOrder.PutUint16(dst[n:], u)
			n += 2
		})
	case UTF32LE, UTF32BE:
		t.toOrder.PutUint32(dst, uint32(s))
		n = 4
	default:
		t.u8.Encode(s, func(b byte) {
			dst[n] = b
			n++
		})
	}
	return n
}
