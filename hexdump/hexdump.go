// Package hexdump renders byte buffers as classic hex+ASCII dumps:
//
//	00000000:  53 63 65 4b 65 72 6e 65  6c 00 41 42 43 44 45 46  |SceKernel.ABCDEF|
//
// Each line carries an 8-digit hex offset, the chunk's bytes as two-digit
// lowercase hex separated by spaces (with an extra gap after the 8th byte
// on wide chunks), and an ASCII column delimited by '|' where
// non-printable bytes show as a placeholder.
//
// Format is the pure transform; Dumper binds it to an io.Writer for
// callers that just want output.
package hexdump

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// DefaultWidth is the number of bytes rendered per line.
	DefaultWidth = 16

	// DefaultPlaceholder substitutes for non-printable bytes in the
	// ASCII column.
	DefaultPlaceholder = '.'

	// gapThreshold is the raw hex-column length beyond which the extra
	// readability gap is inserted (8 byte pairs plus 7 separators).
	gapThreshold = 24
)

// Options controls dump layout.
type Options struct {
	// Width is the number of bytes per line. Default: 16.
	Width int

	// Placeholder replaces non-printable bytes in the ASCII column.
	// Default: '.'.
	Placeholder byte

	// BaseOffset is added to the per-line offsets, so a dump of a file
	// window can show file-absolute positions. Default: 0.
	BaseOffset uint64
}

// DefaultOptions returns the conventional 16-byte layout.
func DefaultOptions() Options {
	return Options{
		Width:       DefaultWidth,
		Placeholder: DefaultPlaceholder,
	}
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Placeholder == 0 {
		o.Placeholder = DefaultPlaceholder
	}
	return o
}

// printable reports whether b renders as itself in the ASCII column.
// Digits, letters, and punctuation qualify; space and control bytes do
// not.
func printable(b byte) bool {
	return b >= 0x21 && b <= 0x7e
}

// Format renders b as a dump and returns it. Every line ends in '\n';
// empty input produces the empty string.
func Format(b []byte, opts Options) string {
	opts = opts.normalized()

	var sb strings.Builder
	line := make([]byte, 0, opts.Width*4)
	for off := 0; off < len(b); off += opts.Width {
		chunk := b[off:min(off+opts.Width, len(b))]

		line = line[:0]
		for i, c := range chunk {
			if i > 0 {
				line = append(line, ' ')
			}
			line = fmt.Appendf(line, "%02x", c)
		}
		if len(line) > gapThreshold {
			line = append(line, 0)
			copy(line[gapThreshold+1:], line[gapThreshold:])
			line[gapThreshold] = ' '
		}

		ascii := make([]byte, len(chunk))
		for i, c := range chunk {
			if printable(c) {
				ascii[i] = c
			} else {
				ascii[i] = opts.Placeholder
			}
		}

		fmt.Fprintf(&sb, "%08x:  %-*s  |%s|\n", opts.BaseOffset+uint64(off), opts.Width*3, line, ascii)
	}
	return sb.String()
}

// A Dumper writes formatted dumps to a fixed writer.
type Dumper struct {
	w    io.Writer
	opts Options
}

// New returns a Dumper writing to w.
//
//	d := hexdump.New(os.Stdout, hexdump.DefaultOptions())
//	d.Dump(segment)
func New(w io.Writer, opts Options) *Dumper {
	return &Dumper{w: w, opts: opts.normalized()}
}

// Dump formats b and writes it to the Dumper's writer.
func (d *Dumper) Dump(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	_, err := io.WriteString(d.w, Format(b, d.opts))
	return err
}

// Print dumps b to stdout with default options.
func Print(b []byte) {
	New(os.Stdout, DefaultOptions()).Dump(b) //nolint:errcheck // stdout
}
