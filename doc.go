// Package unicodec implements Unicode scalar-value transcoding between
// the UTF-8, UTF-16, and UTF-32 encoding forms.
//
// The engine decodes one scalar value at a time from pull-based code-unit
// sources, enforcing the Unicode conformance rules for well-formedness
// (overlong rejection, surrogate exclusion, code-space bounds) and
// reporting every ill-formed sequence together with its maximal-subpart
// length so callers can resynchronize at exactly the right position.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct responsibilities:
//
//	unicodec/            Root package: Scalar, Source, surrogate and width helpers
//	├── codec/           Stateful UTF-8 / UTF-16 / UTF-32 codecs
//	├── transcode/       Generic transcoding driver and the Measure pre-pass
//	├── chunk/           Bulk UTF-16 to UTF-8 packed chunk conversion
//	├── stream/          Byte-stream conversion via golang.org/x/text/transform
//	└── errors/          Structured error types shared across packages
//
// # Quick Start
//
// Transcode UTF-16 code units to UTF-8 bytes, substituting U+FFFD for
// ill-formed input:
//
//	src := unicodec.NewSliceSource([]uint16{0x48, 0x69, 0xD83D, 0xDE00})
//	var out []byte
//	hadErrors := transcode.Transcode(
//	    src, codec.NewUTF16(), codec.NewUTF8(),
//	    transcode.ReplaceIllFormed,
//	    func(b byte) { out = append(out, b) },
//	)
//	// out == "Hi😀", hadErrors == false
//
// Convert whole byte buffers between wire encodings:
//
//	utf16le, err := stream.Bytes([]byte("Hi😀"), stream.UTF8, stream.UTF16LE)
//
// # Error Recovery
//
// Ill-formed input is not a Go error. Each decode step yields a
// codec.Result: a scalar, end of input, or an ill-formed marker carrying
// the maximal-subpart length (how many code units formed a prefix of some
// well-formed sequence before the violation). Callers pick one of two
// policies, stop at the first ill-formed sequence or substitute U+FFFD
// and continue; the transcode package centralizes both.
//
// # Thread Safety
//
// Codec instances hold private decode state and are NOT safe for
// concurrent use. Distinct instances are fully independent and may run in
// parallel without coordination. Scalar values and all pure helpers in
// this package are safe to share.
package unicodec
