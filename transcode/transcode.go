// Package transcode drives conversion between Unicode encoding forms.
//
// Transcode pulls scalar values out of a source through one codec and
// re-encodes them through another, applying a Policy wherever the input
// is ill-formed. Measure runs the same decode loop without producing
// output, reporting the UTF-16 length and ASCII purity of the input.
//
// The scalar stream is the only channel between the two encoding forms.
// Input is never copied to the output raw, so ill-formed sequences are
// substituted or rejected even when both sides use the same encoding.
package transcode

import (
	"github.com/unitext/unicodec"
	"github.com/unitext/unicodec/codec"
)

// Policy selects how Transcode responds to ill-formed input.
type Policy uint8

const (
	// ReplaceIllFormed substitutes U+FFFD for each ill-formed sequence
	// and keeps going.
	ReplaceIllFormed Policy = iota

	// StopOnIllFormed terminates at the first ill-formed sequence.
	// Output emitted before that point is kept.
	StopOnIllFormed
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case ReplaceIllFormed:
		return "replace"
	case StopOnIllFormed:
		return "stop"
	default:
		return "unknown"
	}
}

// Transcode decodes scalar values from src using the from codec and
// encodes each one through the to codec, passing every destination code
// unit to sink. It runs until src is exhausted or, under
// StopOnIllFormed, until the first ill-formed sequence.
//
// The return value reports whether any ill-formed input was seen, under
// either policy. A false return means the input was well-formed from
// start to finish.
func Transcode[In, Out unicodec.CodeUnit](
	src unicodec.Source[In],
	from codec.Codec[In],
	to codec.Codec[Out],
	policy Policy,
	sink func(Out),
) (hadErrors bool) {
	for {
		res := from.Decode(src)
		switch res.Kind {
		case codec.KindEmptyInput:
			return hadErrors

		case codec.KindScalar:
			to.Encode(res.Scalar, sink)

		case codec.KindIllFormed:
			hadErrors = true
			if policy == StopOnIllFormed {
				debugf("stopping on ill-formed sequence spanning %d units", res.Skip)
				return true
			}
			debugf("substituting U+FFFD for ill-formed sequence spanning %d units", res.Skip)
			to.Encode(unicodec.ReplacementChar, sink)
		}
	}
}
