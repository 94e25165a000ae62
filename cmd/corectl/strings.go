package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitadev/corekit/internal/mmfile"
)

var (
	stringsMin     int
	stringsOffsets bool
)

func init() {
	cmd := newStringsCmd()
	cmd.Flags().IntVar(&stringsMin, "min", 4, "Minimum string length")
	cmd.Flags().BoolVar(&stringsOffsets, "offsets", false, "Prefix each string with its file offset")
	rootCmd.AddCommand(cmd)
}

func newStringsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings <file>",
		Short: "Extract printable ASCII strings",
		Long: `The strings command scans a file for runs of printable ASCII bytes,
the way module and symbol names appear in core dumps, and prints each run
of at least --min characters.

Example:
  corectl strings core.psp2dmp
  corectl strings core.psp2dmp --min 6 --offsets`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(args)
		},
	}
	return cmd
}

func runStrings(args []string) error {
	path := args[0]
	if stringsMin < 1 {
		return fmt.Errorf("--min must be at least 1, got %d", stringsMin)
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	printVerbose("Scanning %d bytes from %s\n", len(data), path)

	scanStrings(data, stringsMin, func(off int, s string) {
		if stringsOffsets {
			printInfo("%08x: %s\n", off, s)
		} else {
			printInfo("%s\n", s)
		}
	})
	return nil
}

// isStringByte reports whether b can appear inside an extracted string.
// Unlike the hexdump ASCII column, spaces count: module names and log
// fragments embedded in dumps contain them.
func isStringByte(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// scanStrings calls fn for every run of at least min string bytes in data.
func scanStrings(data []byte, min int, fn func(off int, s string)) {
	start := -1
	for i, b := range data {
		if isStringByte(b) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= min {
			fn(start, string(data[start:i]))
		}
		start = -1
	}
	if start >= 0 && len(data)-start >= min {
		fn(start, string(data[start:]))
	}
}
