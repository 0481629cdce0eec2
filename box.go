// Package axisbox provides a generic axis-aligned box over any scalar type
// and dimension.
//
// A box is stored as a minimum corner and a non-negative extent per axis.
// Point containment uses half-open intervals [min, max), which lets boxes
// tile a grid without sharing cells. Box containment is boundary-inclusive.
package axisbox

import (
	"errors"
	"fmt"
)

// ErrNegativeDim is raised when a box is built with a negative extent.
var ErrNegativeDim = errors.New("axisbox: box extent must be non-negative on every axis")

// Box is an axis-aligned box in V's space. The zero value is an empty box at
// the origin.
type Box[T Scalar, V Vector[T, V]] struct {
	min V
	dim V
}

// CheckDim returns an error wrapping ErrNegativeDim if any component of dim
// is negative.
func CheckDim[T Scalar, V Vector[T, V]](dim V) error {
	for i := 0; i < dim.Len(); i++ {
		if dim.At(i) < 0 {
			return fmt.Errorf("%w: dim[%d] = %v", ErrNegativeDim, i, dim.At(i))
		}
	}
	return nil
}

func mustDim[T Scalar, V Vector[T, V]](dim V) {
	if err := CheckDim[T](dim); err != nil {
		panic(err)
	}
}

// New creates a box with minimum corner min and extents dim.
// It panics if any extent is negative.
func New[T Scalar, V Vector[T, V]](min, dim V) Box[T, V] {
	mustDim[T](dim)
	return Box[T, V]{min: min, dim: dim}
}

// FromDim creates a box with its minimum corner at the origin.
// It panics if any extent is negative.
func FromDim[T Scalar, V Vector[T, V]](dim V) Box[T, V] {
	mustDim[T](dim)
	return Box[T, V]{dim: dim}
}

// FromCorners creates the box spanning min to max.
// It panics if max is below min on any axis.
func FromCorners[T Scalar, V Vector[T, V]](min, max V) Box[T, V] {
	return New[T](min, max.Sub(min))
}

// Min returns the minimum corner.
func (b Box[T, V]) Min() V {
	return b.min
}

// Max returns the corner opposite to Min, min + dim.
func (b Box[T, V]) Max() V {
	return b.min.Add(b.dim)
}

// Dim returns the extent on every axis.
func (b Box[T, V]) Dim() V {
	return b.dim
}

// Volume returns the product of the extents. There is no overflow guard.
func (b Box[T, V]) Volume() T {
	v := T(1)
	for i := 0; i < b.dim.Len(); i++ {
		v *= b.dim.At(i)
	}
	return v
}

// Contains checks if a point is inside the box. The lower bound is
// inclusive and the upper bound exclusive, so Max() itself is outside.
func (b Box[T, V]) Contains(p V) bool {
	return PairwiseAllOf[T](b.min, p, func(a, x T) bool { return a <= x }) &&
		PairwiseAllOf[T](p, b.Max(), func(x, a T) bool { return x < a })
}

// ContainsBox checks if other lies entirely within b, touching faces included.
func (b Box[T, V]) ContainsBox(other Box[T, V]) bool {
	max, otherMax := b.Max(), other.Max()
	for i := 0; i < b.min.Len(); i++ {
		if other.min.At(i) < b.min.At(i) {
			return false
		}
		if otherMax.At(i) > max.At(i) {
			return false
		}
	}
	return true
}

// Intersects checks if two boxes overlap on every axis.
// Boxes that only touch at a face do not intersect.
func (b Box[T, V]) Intersects(other Box[T, V]) bool {
	max, otherMax := b.Max(), other.Max()
	for i := 0; i < b.min.Len(); i++ {
		if other.min.At(i) >= max.At(i) || b.min.At(i) >= otherMax.At(i) {
			return false
		}
	}
	return true
}

// Add returns the box translated by offset. b is left unchanged.
func (b Box[T, V]) Add(offset V) Box[T, V] {
	return Box[T, V]{min: b.min.Add(offset), dim: b.dim}
}

func (b Box[T, V]) String() string {
	return fmt.Sprintf("Box{min: %v, dim: %v}", b.min, b.dim)
}

// Convenience instantiations.
type (
	Recti = Box[int, Vec2[int]]
	Rectf = Box[float32, Vec2[float32]]
	Rectd = Box[float64, Vec2[float64]]
	Cubei = Box[int, Vec3[int]]
	Cubef = Box[float32, Vec3[float32]]
	Cubed = Box[float64, Vec3[float64]]
)

// NewRect creates a 2D box. It panics if any extent is negative.
func NewRect[T Scalar](min, dim Vec2[T]) Box[T, Vec2[T]] {
	return New[T](min, dim)
}

// NewCube creates a 3D box. It panics if any extent is negative.
func NewCube[T Scalar](min, dim Vec3[T]) Box[T, Vec3[T]] {
	return New[T](min, dim)
}
