package axisbox

import "testing"

func TestVecWith(t *testing.T) {
	v := Vec3[int]{1, 2, 3}
	w := v.With(1, 9)
	if w != (Vec3[int]{1, 9, 3}) {
		t.Errorf("With(1, 9) = %v, expected (1, 9, 3)", w)
	}
	if v != (Vec3[int]{1, 2, 3}) {
		t.Error("With should not mutate the receiver")
	}
}

func TestVecAddSub(t *testing.T) {
	a, b := Vec4[float64]{1, 2, 3, 4}, Vec4[float64]{0.5, -2, 0, 10}
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("a + b - b = %v, expected %v", got, a)
	}
	if got := (Vec2[int]{3, 4}).Sub(Vec2[int]{1, 1}); got != (Vec2[int]{2, 3}) {
		t.Errorf("Sub = %v, expected (2, 3)", got)
	}
}

func TestAllOf(t *testing.T) {
	positive := func(x int) bool { return x > 0 }
	if !AllOf[int](Vec3[int]{1, 2, 3}, positive) {
		t.Error("AllOf should hold for (1, 2, 3)")
	}
	if AllOf[int](Vec3[int]{1, 0, 3}, positive) {
		t.Error("AllOf should fail for (1, 0, 3)")
	}
}

func TestPairwiseAllOf(t *testing.T) {
	less := func(a, b float32) bool { return a < b }
	if !PairwiseAllOf[float32](Vec2[float32]{0, 1}, Vec2[float32]{0.5, 2}, less) {
		t.Error("(0, 1) should be below (0.5, 2) on every axis")
	}
	if PairwiseAllOf[float32](Vec2[float32]{0, 2}, Vec2[float32]{0.5, 2}, less) {
		t.Error("(0, 2) is not strictly below (0.5, 2) on Y")
	}
}
