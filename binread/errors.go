package binread

import (
	"errors"
	"fmt"
)

// ErrNotASCII indicates a strict string decode hit a byte outside the
// ASCII range. It is always returned wrapped with the offending offset.
var ErrNotASCII = errors.New("binread: byte outside ASCII range")

// UnderrunError reports a fixed-width read that ran past the end of the
// buffer.
type UnderrunError struct {
	// Off is the offset the read started at.
	Off int
	// Need is the number of bytes the read required.
	Need int
	// Have is the number of bytes actually available at Off.
	Have int
}

func (e *UnderrunError) Error() string {
	return fmt.Sprintf("binread: buffer underrun at offset %d: need %d bytes, have %d", e.Off, e.Need, e.Have)
}

// underrun builds the error for a read of n bytes at off in b.
func underrun(b []byte, off, n int) *UnderrunError {
	have := len(b) - off
	if off < 0 || have < 0 {
		have = 0
	}
	return &UnderrunError{Off: off, Need: n, Have: have}
}
