package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gobounds/internal/config"
	"github.com/philipparndt/gobounds/pkg/analysis"
	"github.com/philipparndt/gobounds/pkg/boxfile"
	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/openscad"
	"github.com/philipparndt/gobounds/pkg/stl"
)

// loadBounds returns the bounds stored in path. STL and OpenSCAD files
// yield the bounds of their vertices; box documents yield the union of
// every entry.
func loadBounds(ctx context.Context, path string) (geometry.BoundingBox3D, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadBoxDocument(path)
	case ".scad":
		return openscad.NewRenderer(filepath.Dir(path)).Bounds(ctx, filepath.Base(path))
	}

	model, err := stl.Parse(path)
	if err != nil {
		return geometry.BoundingBox3D{}, err
	}
	if model.TriangleCount() == 0 {
		return geometry.BoundingBox3D{}, fmt.Errorf("%s: %w", path, stl.ErrNoTriangles)
	}
	return model.Bounds(), nil
}

// watchedFiles lists path and, for OpenSCAD files, everything it includes
func watchedFiles(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		return []string{path}, nil
	}
	return openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(filepath.Base(path))
}

func loadBoxDocument(path string) (geometry.BoundingBox3D, error) {
	f, err := os.Open(path)
	if err != nil {
		return geometry.BoundingBox3D{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	doc, err := boxfile.Decode(f)
	if err != nil {
		return geometry.BoundingBox3D{}, fmt.Errorf("%s: %w", path, err)
	}
	bounds := geometry.NewBoundingBox3[float64]()
	for _, e := range doc.Entries {
		bounds.MergeBox(e.Box)
	}
	return bounds, nil
}

// pad grows box on every side. An empty box stays empty.
func pad(box *geometry.BoundingBox3D, padding float64) {
	if !box.IsEmpty() {
		box.Expand(padding)
	}
}

func printBox(w io.Writer, title string, box geometry.BoundingBox3D, precision int) {
	fmt.Fprintf(w, "%s:\n", title)
	if box.IsEmpty() {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	fmt.Fprintf(w, "  Lower: %s\n", analysis.FormatVector(box.LowerCorner, precision))
	fmt.Fprintf(w, "  Upper: %s\n", analysis.FormatVector(box.UpperCorner, precision))
}

func printReport(w io.Writer, r *analysis.Report, precision int) {
	if r.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", r.Name)
	}
	fmt.Fprintf(w, "Triangles: %d\n", r.TriangleCount)
	fmt.Fprintf(w, "Surface Area: %s\n\n", analysis.FormatMeasurement(r.SurfaceArea, precision, "square units"))

	printBox(w, "Bounding Box", r.BoundingBox, precision)
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(r.MidPoint, precision))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %s\n", analysis.FormatMeasurement(r.Dimensions.X, precision, ""))
	fmt.Fprintf(w, "  Depth (Y): %s\n", analysis.FormatMeasurement(r.Dimensions.Y, precision, ""))
	fmt.Fprintf(w, "  Height (Z): %s\n", analysis.FormatMeasurement(r.Dimensions.Z, precision, ""))
	fmt.Fprintf(w, "  Diagonal: %s\n", analysis.FormatMeasurement(r.Diagonal, precision, ""))
	fmt.Fprintf(w, "  Diagonal Squared: %s\n", analysis.FormatMeasurement(r.DiagonalSquared, precision, "square units"))
	fmt.Fprintf(w, "  Volume: %s\n", analysis.FormatMeasurement(r.Volume, precision, "cubic units"))
}

// writeBoxes prints named boxes in the configured format
func writeBoxes(w io.Writer, cfg config.Config, doc boxfile.Document) error {
	if cfg.Format == config.FormatYAML {
		return boxfile.Encode(w, doc)
	}
	for i, e := range doc.Entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printBox(w, e.Name, e.Box, cfg.Precision)
	}
	return nil
}
