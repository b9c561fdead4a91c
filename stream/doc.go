// Package stream converts byte streams between Unicode wire encodings.
//
// Wire encodings carry an explicit byte order (UTF-16LE, UTF-32BE, and
// so on). This package drives the codec engine over raw bytes and
// plugs into the golang.org/x/text/transform ecosystem, so converted
// streams compose with anything that accepts a transform.Transformer,
// io.Reader, or io.Writer.
//
// # Converting
//
// Whole buffers go through Bytes:
//
//	utf8Bytes, err := stream.Bytes(input, stream.UTF16LE, stream.UTF8)
//
// Streams wrap a reader or writer:
//
//	r := stream.NewReader(file, stream.UTF16BE, stream.UTF8)
//	data, err := io.ReadAll(r)
//
// Ill-formed input never fails a conversion; each ill-formed sequence
// becomes U+FFFD in the output encoding. Byte order marks are not
// interpreted or emitted; the Encoding constants state the byte order.
//
// # Byte sources
//
// ByteSource adapts an io.ByteReader to the pull-based code-unit
// source the codecs consume, for callers that want decode-level
// control over a byte stream instead of whole-stream conversion.
package stream
