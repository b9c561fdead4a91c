package unicodec

// IsSurrogate reports whether v lies in the UTF-16 surrogate range
// [0xD800, 0xDFFF]. Surrogate values are not scalar values in any
// encoding form.
func IsSurrogate(v uint32) bool {
	return surrogateMin <= v && v <= surrogateMax
}

// IsLeadSurrogate reports whether u is a UTF-16 lead (high) surrogate in
// [0xD800, 0xDBFF].
func IsLeadSurrogate(u uint16) bool {
	return surrogateMin <= u && u < trailSurrogateMin
}

// IsTrailSurrogate reports whether u is a UTF-16 trail (low) surrogate in
// [0xDC00, 0xDFFF].
func IsTrailSurrogate(u uint16) bool {
	return trailSurrogateMin <= u && u <= surrogateMax
}

// LeadSurrogate returns the high half of the UTF-16 surrogate pair
// encoding s. The caller must ensure s.UTF16Width() == 2.
func (s Scalar) LeadSurrogate() uint16 {
	return uint16(surrogateMin + (uint32(s)-supplementaryMin)>>10)
}

// TrailSurrogate returns the low half of the UTF-16 surrogate pair
// encoding s. The caller must ensure s.UTF16Width() == 2.
func (s Scalar) TrailSurrogate() uint16 {
	return uint16(trailSurrogateMin + (uint32(s)-supplementaryMin)&0x3FF)
}

// CombineSurrogates assembles the scalar encoded by a UTF-16 surrogate
// pair. The caller must ensure lead is a lead surrogate and trail a trail
// surrogate; decoders check both before combining.
func CombineSurrogates(lead, trail uint16) Scalar {
	return Scalar(supplementaryMin + ((uint32(lead)&0x3FF)<<10 | uint32(trail)&0x3FF))
}
