package codec

import "github.com/unitext/unicodec"

// UTF16 is the codec for the UTF-16 encoding form.
//
// Detecting a lead surrogate with no trailing partner requires reading
// one unit past the error. That unit must not be lost, so the codec keeps
// a one-unit lookahead slot; the next Decode re-examines the stored unit
// as a fresh decode attempt.
type UTF16 struct {
	lookahead    uint16
	hasLookahead bool
	atEnd        bool
}

// NewUTF16 returns a UTF-16 codec in its initial state.
func NewUTF16() *UTF16 {
	return &UTF16{}
}

// String returns the encoding form name.
func (c *UTF16) String() string { return "UTF-16" }

// Reset returns the codec to its initial state.
func (c *UTF16) Reset() {
	*c = UTF16{}
}

// Decode consumes units from src and returns the next decode outcome.
func (c *UTF16) Decode(src unicodec.Source[uint16]) Result {
	if c.atEnd {
		return emptyResult
	}

	var u uint16
	if c.hasLookahead {
		u = c.lookahead
		c.hasLookahead = false
	} else {
		var ok bool
		u, ok = src.Next()
		if !ok {
			c.atEnd = true
			return emptyResult
		}
	}

	if !unicodec.IsSurrogate(uint32(u)) {
		return scalarResult(unicodec.Trusted(uint32(u)))
	}
	if unicodec.IsTrailSurrogate(u) {
		// Trail surrogate with no preceding lead.
		return illFormed(1)
	}

	// Lead surrogate: pair it with the next unit.
	next, ok := src.Next()
	if !ok {
		c.atEnd = true
		return illFormed(1)
	}
	if unicodec.IsTrailSurrogate(next) {
		return scalarResult(unicodec.CombineSurrogates(u, next))
	}
	// Not a trail surrogate: keep it for the next call.
	c.lookahead = next
	c.hasLookahead = true
	return illFormed(1)
}

// Encode emits s as a single unit or a surrogate pair.
func (c *UTF16) Encode(s unicodec.Scalar, emit func(uint16)) {
	if s.UTF16Width() == 1 {
		emit(uint16(s))
		return
	}
	emit(s.LeadSurrogate())
	emit(s.TrailSurrogate())
}
