package stream

import (
	"io"

	"golang.org/x/text/transform"
)

// NewReader wraps r, converting its bytes from one wire encoding to
// another as they are read.
func NewReader(r io.Reader, from, to Encoding) *transform.Reader {
	return transform.NewReader(r, NewTranscoder(from, to))
}

// NewWriter wraps w, converting written bytes before they reach w.
// Close the returned writer to flush any partial sequence held back
// between writes.
func NewWriter(w io.Writer, from, to Encoding) *transform.Writer {
	return transform.NewWriter(w, NewTranscoder(from, to))
}

// Bytes converts b between wire encodings in one call.
func Bytes(b []byte, from, to Encoding) ([]byte, error) {
	out, _, err := transform.Bytes(NewTranscoder(from, to), b)
	return out, err
}
