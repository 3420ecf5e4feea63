package math

import (
	"testing"
)

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999999 || l > 1.000001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Dot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, -5, 6}); got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
	if got := (Vec3{1, -2, 0.5}).Scale(2); got != (Vec3{2, -4, 1}) {
		t.Errorf("Vec3.Scale() = %v, want (2, -4, 1)", got)
	}
}

func TestInt2Sub(t *testing.T) {
	if got := (Int2{132, 52}).Sub(Int2{100, 60}); got != (Int2{32, -8}) {
		t.Errorf("Int2.Sub() = %v, want (32, -8)", got)
	}
}

func TestMapDistance(t *testing.T) {
	tests := []struct {
		a, b Int2
		want int
	}{
		{Int2{0, 0}, Int2{0, 0}, 0},
		{Int2{0, 0}, Int2{10, 0}, 10},
		{Int2{0, 0}, Int2{10, 8}, 12},
		{Int2{132, 52}, Int2{100, 60}, 34},
		{Int2{10, 8}, Int2{0, 0}, 12},
	}
	for _, tt := range tests {
		if got := MapDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("MapDistance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
