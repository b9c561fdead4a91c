package unicodec

import "unsafe"

// CopyUnits copies min(len(dst), len(src)) code units from src to dst and
// returns the number copied. When both element types have the same width
// the copy is a raw memory move; otherwise elements are converted one at
// a time through uint16 as the pivot width.
//
// No validation is performed. The caller must guarantee that every copied
// value is representable in both element types, for example that an 8-bit
// destination receives only values <= 0x7F from a 16-bit source.
func CopyUnits[Dst, Src CodeUnit](dst []Dst, src []Src) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	var d Dst
	var s Src
	if unsafe.Sizeof(d) == unsafe.Sizeof(s) {
		copy(unsafe.Slice((*Src)(unsafe.Pointer(&dst[0])), n), src[:n])
		return n
	}
	for i := 0; i < n; i++ {
		dst[i] = Dst(uint16(src[i]))
	}
	return n
}
