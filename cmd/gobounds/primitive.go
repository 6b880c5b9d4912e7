package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/gobounds/pkg/boxfile"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/sdfbounds"
	"github.com/spf13/cobra"
)

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		values[i] = v
	}
	return values, nil
}

func newPrimitiveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primitive",
		Short: "Bounding boxes of SDF primitives",
		Long:  "Build an sdfx solid centered on the origin and print the bounding box sdfx reports for it.",
	}

	shape := func(use, short string, nargs int, build func(v []float64) (geometry.BoundingBox3D, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				values, err := parseFloats(args)
				if err != nil {
					return err
				}
				box, err := build(values)
				if err != nil {
					return err
				}
				var doc boxfile.Document
				doc.Add(cmd.Name(), box)
				return writeBoxes(cmd.OutOrStdout(), opts.Config, doc)
			},
		}
	}

	cmd.AddCommand(
		shape("box [x] [y] [z]", "Box with the given edge lengths", 3, func(v []float64) (geometry.BoundingBox3D, error) {
			return sdfbounds.Box(v[0], v[1], v[2])
		}),
		shape("cylinder [height] [radius]", "Cylinder along the z axis", 2, func(v []float64) (geometry.BoundingBox3D, error) {
			return sdfbounds.Cylinder(v[0], v[1])
		}),
		shape("sphere [radius]", "Sphere", 1, func(v []float64) (geometry.BoundingBox3D, error) {
			return sdfbounds.Sphere(v[0])
		}),
	)

	return cmd
}
