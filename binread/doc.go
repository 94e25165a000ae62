// Package binread provides the low-level decoding primitives used when
// picking apart Vita core-dump buffers: little-endian fixed-width integer
// reads, NUL-terminated ASCII string extraction, and text-to-bytes
// normalization.
//
// All functions treat the input buffer as read-only and are safe for
// concurrent use. Offsets are zero-based byte offsets into the buffer.
//
// # Reading integers
//
//	v, err := binread.U32(data, 0x08)
//	if err != nil {
//	    var under *binread.UnderrunError
//	    if errors.As(err, &under) {
//	        // under.Off, under.Need, under.Have describe the short read
//	    }
//	}
//
// # Reading strings
//
// CString mirrors the permissive behavior debug and symbol data needs:
// it stops at the first NUL (or the end of the buffer) and silently drops
// non-ASCII bytes. Callers that want malformed input to fail can opt in
// through CStringWith:
//
//	s, err := binread.CStringWith(data, off, binread.CStringOptions{Lenient: false})
package binread
