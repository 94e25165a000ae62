package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitadev/corekit/binread"
	"github.com/vitadev/corekit/internal/mmfile"
)

var readSize int

func init() {
	cmd := newReadCmd()
	cmd.Flags().IntVar(&readSize, "size", 4, "Read width in bytes (1, 2, 4, or 8)")
	rootCmd.AddCommand(cmd)
}

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file> <offset>",
		Short: "Read a little-endian integer at an offset",
		Long: `The read command interprets the bytes at the given offset as a
little-endian unsigned integer and prints it in hex and decimal.

Example:
  corectl read core.psp2dmp 0x10
  corectl read core.psp2dmp 64 --size 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args)
		},
	}
	return cmd
}

func runRead(args []string) error {
	path := args[0]
	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	printVerbose("Mapped %d bytes from %s\n", len(data), path)

	var value uint64
	switch readSize {
	case 1:
		v, err := binread.U8(data, off)
		if err != nil {
			return err
		}
		value = uint64(v)
	case 2:
		v, err := binread.U16(data, off)
		if err != nil {
			return err
		}
		value = uint64(v)
	case 4:
		v, err := binread.U32(data, off)
		if err != nil {
			return err
		}
		value = uint64(v)
	case 8:
		v, err := binread.U64(data, off)
		if err != nil {
			return err
		}
		value = v
	default:
		return fmt.Errorf("unsupported --size %d (want 1, 2, 4, or 8)", readSize)
	}

	printInfo("0x%0*x (%d)\n", readSize*2, value, value)
	return nil
}
