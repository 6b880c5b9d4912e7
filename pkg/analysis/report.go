package analysis

import (
	"fmt"

	"github.com/philipparndt/gobounds/pkg/geometry"
	"github.com/philipparndt/gobounds/pkg/stl"
)

// Report contains the bounds measurements of an STL model
type Report struct {
	Name            string
	BoundingBox     geometry.BoundingBox3D
	Dimensions      geometry.Vector3D
	MidPoint        geometry.Vector3D
	Diagonal        float64
	DiagonalSquared float64
	Volume          float64
	SurfaceArea     float64
	TriangleCount   int
}

// AnalyzeModel measures the bounding box of a model
func AnalyzeModel(model *stl.Model) (*Report, error) {
	if model.TriangleCount() == 0 {
		return nil, stl.ErrNoTriangles
	}
	return BoxReport(model.Name, model.Bounds(), model.SurfaceArea(), model.TriangleCount()), nil
}

// BoxReport builds a report for an already computed box
func BoxReport(name string, box geometry.BoundingBox3D, surfaceArea float64, triangles int) *Report {
	return &Report{
		Name:            name,
		BoundingBox:     box,
		Dimensions:      box.Size(),
		MidPoint:        box.MidPoint(),
		Diagonal:        box.DiagonalLength(),
		DiagonalSquared: box.DiagonalLengthSquared(),
		Volume:          box.Volume(),
		SurfaceArea:     surfaceArea,
		TriangleCount:   triangles,
	}
}

// MergeModels returns the combined bounds of several models. Models without
// triangles contribute nothing.
func MergeModels(models ...*stl.Model) (*Report, error) {
	bounds := geometry.NewBoundingBox3[float64]()
	area := 0.0
	triangles := 0
	for _, m := range models {
		bounds.MergeBox(m.Bounds())
		area += m.SurfaceArea()
		triangles += m.TriangleCount()
	}
	if triangles == 0 {
		return nil, stl.ErrNoTriangles
	}
	return BoxReport("merged", bounds, area, triangles), nil
}

// Comparison describes how the bounds of two models relate
type Comparison struct {
	A, B     geometry.BoundingBox3D
	Overlaps bool
	Union    geometry.BoundingBox3D
}

// CompareBounds checks two boxes for overlap and computes their union
func CompareBounds(a, b geometry.BoundingBox3D) Comparison {
	union := a
	union.MergeBox(b)
	return Comparison{
		A:        a,
		B:        b,
		Overlaps: a.Overlaps(b),
		Union:    union,
	}
}

// FormatVector formats a 3D vector with the given number of decimals
func FormatVector(v geometry.Vector3D, precision int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", precision, v.X, precision, v.Y, precision, v.Z)
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, precision int, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.*f %s", precision, value, unit)
}
