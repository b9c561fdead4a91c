// Package codec implements stateful codecs for the UTF-8, UTF-16, and
// UTF-32 encoding forms.
//
// Each codec decodes one scalar value per call from a pull-based
// code-unit source and encodes one scalar value to code units through a
// callback. Decoding classifies every position of the input as exactly
// one of three outcomes:
//
//	KindScalar      a well-formed sequence produced a scalar value
//	KindEmptyInput  the source is exhausted and nothing is buffered
//	KindIllFormed   an ill-formed sequence was found and skipped
//
// # Decode Loop
//
// Codecs buffer input internally (the UTF-8 codec a four-byte register,
// the UTF-16 codec a one-unit lookahead), so exhaustion of the source is
// not by itself the end of decoding. Keep calling Decode until it reports
// KindEmptyInput:
//
//	c := codec.NewUTF8()
//	src := unicodec.NewSliceSource(data)
//	for {
//	    res := c.Decode(src)
//	    if res.Kind == codec.KindEmptyInput {
//	        break
//	    }
//	    if res.Kind == codec.KindIllFormed {
//	        // res.Skip code units were discarded
//	        continue
//	    }
//	    use(res.Scalar)
//	}
//
// # Error Recovery
//
// Ill-formed sequences are reported with the length of their maximal
// subpart: the longest prefix that could still have begun a well-formed
// sequence. The codec discards exactly that many code units before the
// next decode step, implementing the substitution-friendly recovery the
// Unicode standard recommends (one U+FFFD per maximal subpart, never per
// byte and never a fixed skip).
//
// # Instance Pairing
//
// A codec instance is paired with exactly one source for its lifetime;
// internal state is meaningless across sources. Reset returns an instance
// to its initial state so it can be reused for a new source. Instances
// are not safe for concurrent use.
package codec
