package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coord is the set of coordinate types a Vector3 or BoundingBox3 can hold
type Coord interface {
	constraints.Float
}

// Vector3 represents a 3D point or vector
type Vector3[T Coord] struct {
	X, Y, Z T
}

// Vector3D is a double precision vector, the default for mesh data
type Vector3D = Vector3[float64]

// Vector3F is a single precision vector
type Vector3F = Vector3[float32]

// NewVector3 creates a new double precision vector
func NewVector3(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// NewVector3Of creates a vector of any coordinate type
func NewVector3Of[T Coord](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3[T]) Mul(scalar T) Vector3[T] {
	return Vector3[T]{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// AddScalar adds s to every component
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// Dot returns the dot product of two vectors
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vector3[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSquared())))
}

// Distance returns the distance between two points
func (v Vector3[T]) Distance(other Vector3[T]) T {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction
func (v Vector3[T]) Normalize() Vector3[T] {
	length := v.Length()
	if length == 0 {
		return Vector3[T]{}
	}
	return v.Mul(1 / length)
}

// Min returns a vector with the minimum components of two vectors
func (v Vector3[T]) Min(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: min(v.X, other.X),
		Y: min(v.Y, other.Y),
		Z: min(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3[T]) Max(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: max(v.X, other.X),
		Y: max(v.Y, other.Y),
		Z: max(v.Z, other.Z),
	}
}
