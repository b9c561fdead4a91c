package stream

import (
	"io"

	"go.uber.org/zap"

	"github.com/unitext/unicodec"
	"github.com/unitext/unicodec/errors"
)

// ByteSource adapts an io.ByteReader to the pull-based code-unit
// source consumed by the codecs. A read failure other than io.EOF ends
// the stream exactly like exhaustion; the failure is retained for
// inspection through Err.
type ByteSource struct {
	r    io.ByteReader
	err  error
	off  int64
	done bool
}

var _ unicodec.Source[byte] = (*ByteSource)(nil)

// NewByteSource returns a source drawing bytes from r.
func NewByteSource(r io.ByteReader) *ByteSource {
	return &ByteSource{r: r}
}

// Next returns the next byte of the stream.
func (s *ByteSource) Next() (byte, bool) {
	if s.done {
		return 0, false
	}
	b, err := s.r.ReadByte()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = errors.SourceFailure(s.off, err)
			Logger().Warn("byte source failed",
				zap.Int64("offset", s.off),
				zap.Error(err))
		}
		return 0, false
	}
	s.off++
	return b, true
}

// Err reports the read failure that ended the stream, if any. It is
// nil while the stream is still going and after a clean end of input.
func (s *ByteSource) Err() error {
	return s.err
}
