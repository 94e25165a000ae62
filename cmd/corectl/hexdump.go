package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitadev/corekit/hexdump"
	"github.com/vitadev/corekit/internal/mmfile"
)

var (
	hexdumpOffset string
	hexdumpLength int
	hexdumpWidth  int
	hexdumpSep    string
)

func init() {
	cmd := newHexdumpCmd()
	cmd.Flags().StringVar(&hexdumpOffset, "offset", "0", "Start offset (decimal or 0x hex)")
	cmd.Flags().IntVar(&hexdumpLength, "length", 0, "Number of bytes to dump (0 = to end of file)")
	cmd.Flags().IntVar(&hexdumpWidth, "width", hexdump.DefaultWidth, "Bytes per line")
	cmd.Flags().StringVar(&hexdumpSep, "sep", ".", "Placeholder for non-printable bytes")
	rootCmd.AddCommand(cmd)
}

func newHexdumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hexdump <file>",
		Short: "Hex+ASCII dump of a file window",
		Long: `The hexdump command prints a hex+ASCII dump of a file, or of a window
of it selected with --offset and --length. Offsets shown in the dump are
file-absolute.

Example:
  corectl hexdump core.psp2dmp
  corectl hexdump core.psp2dmp --offset 0x1000 --length 256
  corectl hexdump core.psp2dmp --width 8 --sep '_'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHexdump(args)
		},
	}
	return cmd
}

func runHexdump(args []string) error {
	path := args[0]

	off, err := parseOffset(hexdumpOffset)
	if err != nil {
		return err
	}
	if len(hexdumpSep) != 1 {
		return fmt.Errorf("--sep must be a single character, got %q", hexdumpSep)
	}

	printVerbose("Mapping file: %s\n", path)
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	if off > len(data) {
		return fmt.Errorf("offset 0x%x beyond end of file (%d bytes)", off, len(data))
	}
	window := data[off:]
	if hexdumpLength > 0 && hexdumpLength < len(window) {
		window = window[:hexdumpLength]
	}

	opts := hexdump.Options{
		Width:       hexdumpWidth,
		Placeholder: hexdumpSep[0],
		BaseOffset:  uint64(off),
	}
	if quiet {
		return nil
	}
	return hexdump.New(os.Stdout, opts).Dump(window)
}
