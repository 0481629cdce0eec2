package axisbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Conversions to and from the mathgl vector types. The underlying arrays are
// identical, so these are plain conversions.

func Vec2FromMgl32(v mgl32.Vec2) Vec2[float32] { return Vec2[float32](v) }
func Vec3FromMgl32(v mgl32.Vec3) Vec3[float32] { return Vec3[float32](v) }
func Vec4FromMgl32(v mgl32.Vec4) Vec4[float32] { return Vec4[float32](v) }
func Vec2FromMgl64(v mgl64.Vec2) Vec2[float64] { return Vec2[float64](v) }
func Vec3FromMgl64(v mgl64.Vec3) Vec3[float64] { return Vec3[float64](v) }
func Vec4FromMgl64(v mgl64.Vec4) Vec4[float64] { return Vec4[float64](v) }

func Mgl32Vec2(v Vec2[float32]) mgl32.Vec2 { return mgl32.Vec2(v) }
func Mgl32Vec3(v Vec3[float32]) mgl32.Vec3 { return mgl32.Vec3(v) }
func Mgl32Vec4(v Vec4[float32]) mgl32.Vec4 { return mgl32.Vec4(v) }
func Mgl64Vec2(v Vec2[float64]) mgl64.Vec2 { return mgl64.Vec2(v) }
func Mgl64Vec3(v Vec3[float64]) mgl64.Vec3 { return mgl64.Vec3(v) }
func Mgl64Vec4(v Vec4[float64]) mgl64.Vec4 { return mgl64.Vec4(v) }

// FromBounds builds a box from Min/Max corners, as used by physics AABBs.
// It panics if max is below min on any axis.
func FromBounds(min, max mgl64.Vec3) Cubed {
	return FromCorners[float64](Vec3FromMgl64(min), Vec3FromMgl64(max))
}

// Bounds returns the Min/Max corners of b.
func Bounds(b Cubed) (min, max mgl64.Vec3) {
	return Mgl64Vec3(b.Min()), Mgl64Vec3(b.Max())
}

// FromBounds32 is FromBounds for float32 geometry.
func FromBounds32(min, max mgl32.Vec3) Cubef {
	return FromCorners[float32](Vec3FromMgl32(min), Vec3FromMgl32(max))
}

// Bounds32 returns the Min/Max corners of b.
func Bounds32(b Cubef) (min, max mgl32.Vec3) {
	return Mgl32Vec3(b.Min()), Mgl32Vec3(b.Max())
}
