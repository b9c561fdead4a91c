package unicodec

// CodeUnit constrains the element types an encoded stream can carry:
// 8-, 16-, and 32-bit unsigned integers. A code unit has no intrinsic
// validity; only sequences of code units are well- or ill-formed.
type CodeUnit interface {
	~uint8 | ~uint16 | ~uint32
}

// Source is a finite, pull-based sequence of code units consumed
// left-to-right at most once. Next returns the next unit in stream order,
// or ok == false once the sequence is exhausted; implementations must
// keep returning (0, false) after that.
type Source[U CodeUnit] interface {
	Next() (unit U, ok bool)
}

// SliceSource is a Source reading from an in-memory slice.
type SliceSource[U CodeUnit] struct {
	units []U
	pos   int
}

// NewSliceSource returns a SliceSource over units. The slice is not
// copied; the caller must not modify it while decoding.
func NewSliceSource[U CodeUnit](units []U) *SliceSource[U] {
	return &SliceSource[U]{units: units}
}

// Next returns the next unit of the slice.
func (s *SliceSource[U]) Next() (U, bool) {
	if s.pos >= len(s.units) {
		return 0, false
	}
	u := s.units[s.pos]
	s.pos++
	return u, true
}

// Reset makes s read from the start of units, discarding any previous
// position.
func (s *SliceSource[U]) Reset(units []U) {
	s.units = units
	s.pos = 0
}

// SourceFunc adapts a function to the Source interface, letting a closure
// act as a code-unit source.
type SourceFunc[U CodeUnit] func() (U, bool)

// Next calls f.
func (f SourceFunc[U]) Next() (U, bool) { return f() }
