package binread

import (
	"encoding/binary"

	"github.com/vitadev/corekit/internal/buf"
)

// U8 reads the byte at off. Returns an *UnderrunError when off is out of
// range.
func U8(b []byte, off int) (uint8, error) {
	s, ok := buf.Slice(b, off, 1)
	if !ok {
		return 0, underrun(b, off, 1)
	}
	return s[0], nil
}

// U16 reads a little-endian uint16 at off. Returns an *UnderrunError when
// fewer than 2 bytes remain.
func U16(b []byte, off int) (uint16, error) {
	s, ok := buf.Slice(b, off, 2)
	if !ok {
		return 0, underrun(b, off, 2)
	}
	return binary.LittleEndian.Uint16(s), nil
}

// U32 reads a little-endian uint32 at off. Returns an *UnderrunError when
// fewer than 4 bytes remain.
func U32(b []byte, off int) (uint32, error) {
	s, ok := buf.Slice(b, off, 4)
	if !ok {
		return 0, underrun(b, off, 4)
	}
	return binary.LittleEndian.Uint32(s), nil
}

// U64 reads a little-endian uint64 at off. Returns an *UnderrunError when
// fewer than 8 bytes remain.
func U64(b []byte, off int) (uint64, error) {
	s, ok := buf.Slice(b, off, 8)
	if !ok {
		return 0, underrun(b, off, 8)
	}
	return binary.LittleEndian.Uint64(s), nil
}
