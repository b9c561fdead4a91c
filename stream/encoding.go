package stream

import (
	"encoding/binary"
	"fmt"
)

// Encoding identifies a byte-level Unicode wire encoding. Byte order
// is explicit; none of the forms read or write byte order marks.
type Encoding uint8

const (
	UTF8 Encoding = iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

// String returns the conventional encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Width returns the code unit size in bytes, or 0 when the encoding is
// not one of the defined constants.
func (e Encoding) Width() int {
	switch e {
	case UTF8:
		return 1
	case UTF16LE, UTF16BE:
		return 2
	case UTF32LE, UTF32BE:
		return 4
	default:
		return 0
	}
}

func (e Encoding) byteOrder() binary.ByteOrder {
	switch e {
	case UTF16LE, UTF32LE:
		return binary.LittleEndian
	case UTF16BE, UTF32BE:
		return binary.BigEndian
	default:
		return nil
	}
}
