package stl

import (
	"errors"

	"github.com/philipparndt/gobounds/pkg/geometry"
)

// ErrNoTriangles is returned when a model has no facets to measure
var ErrNoTriangles = errors.New("model has no triangles")

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the bounding box of every vertex in the model. A model
// without triangles yields an empty box.
func (m *Model) Bounds() geometry.BoundingBox3D {
	bbox := geometry.NewBoundingBox3[float64]()
	for _, triangle := range m.Triangles {
		bbox.Merge(triangle.V1)
		bbox.Merge(triangle.V2)
		bbox.Merge(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}
