package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3D
	V1, V2, V3 Vector3D
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3D) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3D {
	sum := t.V1.Add(t.V2).Add(t.V3)
	return Vector3D{X: sum.X / 3.0, Y: sum.Y / 3.0, Z: sum.Z / 3.0}
}

// Bounds returns the tightest box around the three vertices
func (t Triangle) Bounds() BoundingBox3D {
	return BoundsOf(t.V1, t.V2, t.V3)
}
