package axisbox

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestFromBounds(t *testing.T) {
	min, max := mgl64.Vec3{-1, 0, 2}, mgl64.Vec3{1, 3, 2.5}
	b := FromBounds(min, max)

	if b.Dim() != (Vec3[float64]{2, 3, 0.5}) {
		t.Errorf("Dim() = %v, expected (2, 3, 0.5)", b.Dim())
	}

	gotMin, gotMax := Bounds(b)
	if !gotMin.ApproxEqual(min) || !gotMax.ApproxEqual(max) {
		t.Errorf("Bounds() = %v, %v, expected %v, %v", gotMin, gotMax, min, max)
	}
}

func TestFromBounds_Inverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic when max is below min")
		}
	}()
	FromBounds(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{0, 2, 2})
}

func TestFromBounds32(t *testing.T) {
	b := FromBounds32(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 2, 2})
	if b.Volume() != 8 {
		t.Errorf("Volume() = %v, expected 8", b.Volume())
	}
	if !b.Contains(Vec3FromMgl32(mgl32.Vec3{1, 1, 1})) {
		t.Error("box should contain its center")
	}
	_, max := Bounds32(b)
	if max != (mgl32.Vec3{2, 2, 2}) {
		t.Errorf("max = %v, expected (2, 2, 2)", max)
	}
}

func TestMglTranslate(t *testing.T) {
	b := NewRect(Vec2[float64]{0, 0}, Vec2[float64]{1, 1})
	offset := mgl64.Vec2{0.5, -0.5}.Mul(2)
	moved := b.Add(Vec2FromMgl64(offset))

	if Mgl64Vec2(moved.Min()) != offset {
		t.Errorf("Min() = %v, expected %v", moved.Min(), offset)
	}
	if Mgl32Vec4(Vec4FromMgl32(mgl32.Vec4{1, 2, 3, 4})) != (mgl32.Vec4{1, 2, 3, 4}) {
		t.Error("Vec4 round trip changed the value")
	}
}
