package main

import (
	"fmt"

	"github.com/philipparndt/gobounds/internal/config"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/boxfile"
	"github.com/spf13/cobra"
)

func newOverlapCmd(opts *options) *cobra.Command {
	var padding float64

	cmd := &cobra.Command{
		Use:   "overlap [file-a] [file-b]",
		Short: "Check whether the bounding boxes of two files overlap",
		Long:  "Report whether two bounding boxes intersect, touching boxes included, and print the box that encloses both.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadBounds(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := loadBounds(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			pad(&a, padding)
			pad(&b, padding)

			c := analysis.CompareBounds(a, b)

			out := cmd.OutOrStdout()
			if opts.Format == config.FormatYAML {
				var doc boxfile.Document
				doc.Add(args[0], c.A)
				doc.Add(args[1], c.B)
				doc.Add("union", c.Union)
				return boxfile.Encode(out, doc)
			}

			verdict := "no"
			if c.Overlaps {
				verdict = "yes"
			}
			fmt.Fprintf(out, "Overlap: %s\n\n", verdict)
			printBox(out, args[0], c.A, opts.Precision)
			printBox(out, args[1], c.B, opts.Precision)
			printBox(out, "Union", c.Union, opts.Precision)
			return nil
		},
	}

	cmd.Flags().Float64Var(&padding, "pad", 0, "Grow both boxes by this amount before comparing")

	return cmd
}
