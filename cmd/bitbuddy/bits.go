package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/bitbuddy/internal/bits"
)

var errUnparseable = errors.New("not a decimal or 0x hex value in 64-bit range")

func newBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits <value>",
		Short: "Print the 64-bit binary expansion of a value",
		Long: `Print the 64-bit binary expansion of a value in nibble groups,
most significant bit first.

Example:
  bitbuddy bits 255
  bitbuddy bits 0xDEADBEEF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			binary := bits.ParseToBinary64(args[0])
			if binary == "" {
				return fmt.Errorf("%q: %w", args[0], errUnparseable)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(bits.Nibbles(binary), " "))
			return nil
		},
	}
}
