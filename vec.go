package axisbox

import "golang.org/x/exp/constraints"

// Scalar is the set of component types a box can be built over.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vector is a fixed-size tuple of scalars. V is the implementing type itself,
// so that Add and Sub return the concrete vector.
type Vector[T Scalar, V any] interface {
	comparable
	// Len returns the number of components (the dimension).
	Len() int
	// At returns the i-th component.
	At(i int) T
	// With returns a copy with the i-th component set to x.
	With(i int, x T) V
	Add(o V) V
	Sub(o V) V
}

// AllOf reports whether pred holds for every component of v.
func AllOf[T Scalar, V Vector[T, V]](v V, pred func(T) bool) bool {
	for i := 0; i < v.Len(); i++ {
		if !pred(v.At(i)) {
			return false
		}
	}
	return true
}

// PairwiseAllOf reports whether pred holds for every pair of components
// a[i], b[i].
func PairwiseAllOf[T Scalar, V Vector[T, V]](a, b V, pred func(T, T) bool) bool {
	for i := 0; i < a.Len(); i++ {
		if !pred(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// ============================================================================
// Vec2
// ============================================================================

// Vec2 is a 2D vector.
type Vec2[T Scalar] [2]T

func (v Vec2[T]) Len() int { return 2 }
func (v Vec2[T]) At(i int) T { return v[i] }
func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + o[0], v[1] + o[1]} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - o[0], v[1] - o[1]} }

func (v Vec2[T]) With(i int, x T) Vec2[T] {
	v[i] = x
	return v
}

// ============================================================================
// Vec3
// ============================================================================

// Vec3 is a 3D vector.
type Vec3[T Scalar] [3]T

func (v Vec3[T]) Len() int { return 3 }
func (v Vec3[T]) At(i int) T { return v[i] }
func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3[T]) With(i int, x T) Vec3[T] {
	v[i] = x
	return v
}

// ============================================================================
// Vec4
// ============================================================================

// Vec4 is a 4D vector.
type Vec4[T Scalar] [4]T

func (v Vec4[T]) Len() int { return 4 }
func (v Vec4[T]) At(i int) T { return v[i] }
func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4[T]) With(i int, x T) Vec4[T] {
	v[i] = x
	return v
}
