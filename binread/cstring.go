package binread

import "fmt"

// CStringOptions controls string decoding behavior.
type CStringOptions struct {
	// Lenient drops bytes outside the ASCII range instead of failing.
	// Core-dump string tables routinely contain mixed-encoding and
	// binary debris, so this is the default.
	Lenient bool
}

// DefaultCStringOptions returns the permissive defaults.
func DefaultCStringOptions() CStringOptions {
	return CStringOptions{Lenient: true}
}

// CStringWith reads a NUL-terminated ASCII string starting at off,
// stopping at the first zero byte or the end of the buffer. In lenient
// mode bytes >= 0x80 are silently discarded; in strict mode the first
// such byte fails the decode with a wrapped ErrNotASCII.
//
// A negative offset is an error. An offset at or past the end of the
// buffer yields the empty string.
func CStringWith(b []byte, off int, opts CStringOptions) (string, error) {
	if off < 0 {
		return "", underrun(b, off, 1)
	}
	out := make([]byte, 0, 16)
	for i := off; i < len(b); i++ {
		c := b[i]
		if c == 0 {
			break
		}
		if c >= 0x80 {
			if opts.Lenient {
				continue
			}
			return "", fmt.Errorf("%w: 0x%02x at offset %d", ErrNotASCII, c, i)
		}
		out = append(out, c)
	}
	return string(out), nil
}

// CString reads a NUL-terminated string at off with lenient decoding.
func CString(b []byte, off int) string {
	s, err := CStringWith(b, off, DefaultCStringOptions())
	if err != nil {
		return ""
	}
	return s
}
