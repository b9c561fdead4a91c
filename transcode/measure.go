package transcode

import (
	"fmt"

	"github.com/unitext/unicodec"
	"github.com/unitext/unicodec/codec"
	"github.com/unitext/unicodec/errors"
)

// Measurement describes the text in a source without producing output.
type Measurement struct {
	// UTF16Length is the number of UTF-16 code units the scalar stream
	// occupies when encoded.
	UTF16Length int

	// ASCII reports whether every scalar was at or below U+007F. An
	// empty source measures as ASCII.
	ASCII bool
}

// ErrRejected is the matching target for measurement failures caused by
// ill-formed input. Use stdlib errors.Is against errors returned by
// Measure.
var ErrRejected error = &errors.Error{
	Phase: errors.PhaseMeasure,
	Kind:  errors.KindIllFormed,
}

// Measure decodes src to exhaustion through c, accumulating the UTF-16
// length and ASCII purity of the scalar stream. No output is produced.
//
// When repairIllFormed is set, each ill-formed sequence counts as one
// U+FFFD (one UTF-16 unit, not ASCII). Otherwise the first ill-formed
// sequence aborts the measurement with an error matching ErrRejected,
// and the zero Measurement is returned.
func Measure[U unicodec.CodeUnit](
	src unicodec.Source[U],
	c codec.Codec[U],
	repairIllFormed bool,
) (Measurement, error) {
	m := Measurement{ASCII: true}
	scalars := 0
	for {
		res := c.Decode(src)
		switch res.Kind {
		case codec.KindEmptyInput:
			return m, nil

		case codec.KindScalar:
			m.UTF16Length += res.Scalar.UTF16Width()
			if !res.Scalar.IsASCII() {
				m.ASCII = false
			}
			scalars++

		case codec.KindIllFormed:
			if !repairIllFormed {
				return Measurement{}, rejected(c, scalars)
			}
			m.UTF16Length += unicodec.ReplacementChar.UTF16Width()
			m.ASCII = false
			scalars++
		}
	}
}

func rejected[U unicodec.CodeUnit](c codec.Codec[U], scalars int) error {
	b := errors.New(errors.PhaseMeasure, errors.KindIllFormed).
		Detail("ill-formed sequence after %d well-formed scalars", scalars)
	if s, ok := any(c).(fmt.Stringer); ok {
		b = b.Encoding(s.String())
	}
	return b.Build()
}
