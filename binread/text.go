package binread

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// TextBytes converts s to raw bytes using Latin-1, one byte per
// character. It is the single text-to-bytes boundary for callers holding
// textual buffer representations; every other API in this module takes
// []byte. Runes outside Latin-1 fail the conversion.
func TextBytes(s string) ([]byte, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("binread: text is not representable as single-byte data: %w", err)
	}
	return b, nil
}
