package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gobounds/pkg/boxfile"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/spf13/cobra"
)

func newBoundsCmd(opts *options) *cobra.Command {
	var (
		padding float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "bounds [file]...",
		Short: "Merge the bounding boxes of several files",
		Long: `Compute the bounding box of every STL model or box document and the
smallest box containing all of them. The merged box can be padded on every
side with --pad and saved as a box document with --output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pad") {
				padding = opts.Padding
			}

			var doc boxfile.Document
			merged := geometry.NewBoundingBox3[float64]()
			for _, path := range args {
				box, err := loadBounds(cmd.Context(), path)
				if err != nil {
					return err
				}
				doc.Add(path, box)
				merged.MergeBox(box)
			}

			pad(&merged, padding)
			doc.Add("merged", merged)

			if output != "" {
				if err := saveBoxes(output, doc); err != nil {
					return err
				}
			}

			return writeBoxes(cmd.OutOrStdout(), opts.Config, doc)
		},
	}

	cmd.Flags().Float64Var(&padding, "pad", 0, "Grow the merged box by this amount on every side (env GOBOUNDS_PADDING)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the boxes to this YAML file")

	return cmd
}

// saveBoxes writes doc to path, reporting errors from the final close too
func saveBoxes(path string, doc boxfile.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := boxfile.Encode(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
