package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/spf13/cobra"
)

func newContainsCmd(opts *options) *cobra.Command {
	var x, y, z, padding float64

	cmd := &cobra.Command{
		Use:   "contains [file]",
		Short: "Test whether a point lies inside a bounding box",
		Long:  "Check a point against the bounding box of a file. Points on a face, edge or corner count as inside.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := loadBounds(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			pad(&box, padding)

			point := geometry.NewVector3(x, y, z)
			verdict := "outside"
			if box.Contains(point) {
				verdict = "inside"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Point %s is %s\n\n", analysis.FormatVector(point, opts.Precision), verdict)
			printBox(out, args[0], box, opts.Precision)
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "X coordinate of the point")
	cmd.Flags().Float64Var(&y, "y", 0, "Y coordinate of the point")
	cmd.Flags().Float64Var(&z, "z", 0, "Z coordinate of the point")
	cmd.Flags().Float64Var(&padding, "pad", 0, "Grow the box by this amount before testing")
	cmd.MarkFlagsRequiredTogether("x", "y", "z")

	return cmd
}
