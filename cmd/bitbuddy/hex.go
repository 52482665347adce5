package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jask/bitbuddy/internal/ranges"
)

func newHexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <value> <start> <end>",
		Short: "Print the hex value of a bit range",
		Long: `Print the hex value of the bits between two display positions,
where 63 is the most significant bit and 0 the least. The positions may
be given in either order.

Example:
  bitbuddy hex 255 7 0
  bitbuddy hex 0xF0 4 7`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("start %q: %w", args[1], err)
			}
			b, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("end %q: %w", args[2], err)
			}
			start, end := max(a, b), min(a, b)

			ctrl := ranges.NewController(ranges.NewStore(ranges.WithColorPicker(ranges.FixedPicker(""))), nil)
			ctrl.SetInput(args[0])
			r, err := ctrl.AddRange(start, end)
			if errors.Is(err, ranges.ErrNoBinary) {
				return fmt.Errorf("%q: %w", args[0], errUnparseable)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Hex)
			return nil
		},
	}
}
