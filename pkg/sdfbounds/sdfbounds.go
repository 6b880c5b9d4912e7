// Package sdfbounds converts between gobounds boxes and the bounding boxes
// of github.com/deadsy/sdfx signed distance solids.
package sdfbounds

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/philipparndt/gobounds/pkg/geometry"
)

func fromVec(v v3.Vec) geometry.Vector3D {
	return geometry.NewVector3(v.X, v.Y, v.Z)
}

func toVec(v geometry.Vector3D) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromBox3 converts an sdfx box. Corners are re-sorted per axis.
func FromBox3(b sdf.Box3) geometry.BoundingBox3D {
	return geometry.NewBoundingBox3FromCorners(fromVec(b.Min), fromVec(b.Max))
}

// ToBox3 converts a box to its sdfx form. The empty box maps to an inverted
// sdfx box with the same sentinel corners.
func ToBox3(b geometry.BoundingBox3D) sdf.Box3 {
	return sdf.Box3{Min: toVec(b.LowerCorner), Max: toVec(b.UpperCorner)}
}

// OfSolid returns the bounding box sdfx reports for a solid
func OfSolid(s sdf.SDF3) geometry.BoundingBox3D {
	return FromBox3(s.BoundingBox())
}

// Box returns the bounds of an sdfx box primitive of the given size,
// centered on the origin.
func Box(x, y, z float64) (geometry.BoundingBox3D, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return geometry.BoundingBox3D{}, fmt.Errorf("sdfx box: %w", err)
	}
	return OfSolid(s), nil
}

// Cylinder returns the bounds of an sdfx cylinder along the z axis,
// centered on the origin.
func Cylinder(height, radius float64) (geometry.BoundingBox3D, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return geometry.BoundingBox3D{}, fmt.Errorf("sdfx cylinder: %w", err)
	}
	return OfSolid(s), nil
}

// Sphere returns the bounds of an sdfx sphere centered on the origin.
func Sphere(radius float64) (geometry.BoundingBox3D, error) {
	s, err := sdf.Sphere3D(radius)
	if err != nil {
		return geometry.BoundingBox3D{}, fmt.Errorf("sdfx sphere: %w", err)
	}
	return OfSolid(s), nil
}
