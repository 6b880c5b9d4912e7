package geometry

import (
	"math"
	"unsafe"
)

// BoundingBox3 is an axis-aligned box in 3D space described by its lower
// and upper corners.
//
// The zero-extent "empty" box is encoded with inverted extreme corners:
// LowerCorner holds the largest finite coordinate on every axis and
// UpperCorner the most negative one. Any finite point wins both the min and
// the max against those values, so Merge and MergeBox need no special case
// for an empty receiver.
type BoundingBox3[T Coord] struct {
	LowerCorner Vector3[T]
	UpperCorner Vector3[T]
}

// BoundingBox3D is a double precision bounding box
type BoundingBox3D = BoundingBox3[float64]

// BoundingBox3F is a single precision bounding box
type BoundingBox3F = BoundingBox3[float32]

// maxCoord returns the largest finite value of T.
func maxCoord[T Coord]() T {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.MaxFloat32)
	}
	limit := math.MaxFloat64
	return T(limit)
}

// NewBoundingBox3 returns an empty box
func NewBoundingBox3[T Coord]() BoundingBox3[T] {
	m := maxCoord[T]()
	return BoundingBox3[T]{
		LowerCorner: Vector3[T]{X: m, Y: m, Z: m},
		UpperCorner: Vector3[T]{X: -m, Y: -m, Z: -m},
	}
}

// NewBoundingBox3FromCorners returns the box spanned by two opposite corners.
// The corners may be given in any order; each axis is sorted independently.
func NewBoundingBox3FromCorners[T Coord](p1, p2 Vector3[T]) BoundingBox3[T] {
	return BoundingBox3[T]{
		LowerCorner: p1.Min(p2),
		UpperCorner: p1.Max(p2),
	}
}

// BoundsOf returns the smallest box containing all points. With no points
// the box is empty.
func BoundsOf[T Coord](points ...Vector3[T]) BoundingBox3[T] {
	b := NewBoundingBox3[T]()
	for _, p := range points {
		b.Merge(p)
	}
	return b
}

// Overlaps reports whether the two boxes intersect. Boxes sharing only a
// face, edge or corner overlap.
func (b BoundingBox3[T]) Overlaps(other BoundingBox3[T]) bool {
	return b.LowerCorner.X <= other.UpperCorner.X && b.UpperCorner.X >= other.LowerCorner.X &&
		b.LowerCorner.Y <= other.UpperCorner.Y && b.UpperCorner.Y >= other.LowerCorner.Y &&
		b.LowerCorner.Z <= other.UpperCorner.Z && b.UpperCorner.Z >= other.LowerCorner.Z
}

// Contains reports whether point lies inside the box or on its boundary.
func (b BoundingBox3[T]) Contains(point Vector3[T]) bool {
	return b.LowerCorner.X <= point.X && point.X <= b.UpperCorner.X &&
		b.LowerCorner.Y <= point.Y && point.Y <= b.UpperCorner.Y &&
		b.LowerCorner.Z <= point.Z && point.Z <= b.UpperCorner.Z
}

// MidPoint returns the center of the box
func (b BoundingBox3[T]) MidPoint() Vector3[T] {
	return b.LowerCorner.Add(b.UpperCorner).Mul(0.5)
}

// DiagonalLength returns the distance between the two corners
func (b BoundingBox3[T]) DiagonalLength() T {
	return b.UpperCorner.Sub(b.LowerCorner).Length()
}

// DiagonalLengthSquared returns the squared distance between the two corners
func (b BoundingBox3[T]) DiagonalLengthSquared() T {
	return b.UpperCorner.Sub(b.LowerCorner).LengthSquared()
}

// Size returns the extent of the box along each axis
func (b BoundingBox3[T]) Size() Vector3[T] {
	return b.UpperCorner.Sub(b.LowerCorner)
}

// Volume returns the volume of the box
func (b BoundingBox3[T]) Volume() T {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// IsEmpty reports whether the box is exactly the empty sentinel.
func (b BoundingBox3[T]) IsEmpty() bool {
	return b == NewBoundingBox3[T]()
}

// Reset makes the box empty again.
func (b *BoundingBox3[T]) Reset() {
	*b = NewBoundingBox3[T]()
}

// Merge grows the box to include point.
func (b *BoundingBox3[T]) Merge(point Vector3[T]) {
	b.LowerCorner = b.LowerCorner.Min(point)
	b.UpperCorner = b.UpperCorner.Max(point)
}

// MergeBox grows the box to include other.
func (b *BoundingBox3[T]) MergeBox(other BoundingBox3[T]) {
	b.LowerCorner = b.LowerCorner.Min(other.LowerCorner)
	b.UpperCorner = b.UpperCorner.Max(other.UpperCorner)
}

// Expand pads the box by delta on every side. A negative delta shrinks it;
// shrinking past zero extent leaves LowerCorner above UpperCorner.
func (b *BoundingBox3[T]) Expand(delta T) {
	b.LowerCorner = b.LowerCorner.AddScalar(-delta)
	b.UpperCorner = b.UpperCorner.AddScalar(delta)
}
