package codec

import "github.com/unitext/unicodec"

// ResultKind discriminates the three outcomes of a single decode step.
type ResultKind uint8

const (
	// KindScalar means the step decoded a well-formed sequence.
	KindScalar ResultKind = iota
	// KindEmptyInput means the source is exhausted and the codec holds
	// no buffered units: decoding is complete.
	KindEmptyInput
	// KindIllFormed means an ill-formed sequence was found and skipped.
	KindIllFormed
)

// String returns the kind's name.
func (k ResultKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEmptyInput:
		return "empty input"
	case KindIllFormed:
		return "ill-formed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one decode step.
//
// Scalar is meaningful only when Kind is KindScalar. Skip is meaningful
// only when Kind is KindIllFormed: it is the maximal-subpart length of
// the ill-formed sequence, the number of leading code units that were
// consumable as a prefix of some well-formed sequence before the
// violation was found. The codec has already discarded those units;
// callers tracking input positions advance by Skip to stay aligned. Skip
// is always 1 for UTF-16 and UTF-32 and in [1, 3] for UTF-8.
type Result struct {
	Scalar unicodec.Scalar
	Skip   int
	Kind   ResultKind
}

func scalarResult(s unicodec.Scalar) Result {
	return Result{Scalar: s, Kind: KindScalar}
}

func illFormed(skip int) Result {
	return Result{Skip: skip, Kind: KindIllFormed}
}

var emptyResult = Result{Kind: KindEmptyInput}
