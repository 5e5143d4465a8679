package core

import (
	"math"
	"testing"
)

func TestSphereIntersectsSphere(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Sphere
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Sphere{Center: Vec3{0, 0, 0}, Radius: 1},
			b:        Sphere{Center: Vec3{1.5, 0, 0}, Radius: 1},
			expected: true,
		},
		{
			name:     "touching counts as hit",
			a:        Sphere{Center: Vec3{0, 0, 0}, Radius: 1},
			b:        Sphere{Center: Vec3{2, 0, 0}, Radius: 1},
			expected: true,
		},
		{
			name:     "separated",
			a:        Sphere{Center: Vec3{0, 0, 0}, Radius: 1},
			b:        Sphere{Center: Vec3{3, 0, 0}, Radius: 1},
			expected: false,
		},
		{
			name:     "diagonal separation",
			a:        Sphere{Center: Vec3{0, 0, 0}, Radius: 0.5},
			b:        Sphere{Center: Vec3{1, 1, 1}, Radius: 0.5},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.IntersectsSphere(tc.b); got != tc.expected {
				t.Errorf("IntersectsSphere() = %v, expected %v", got, tc.expected)
			}
			// Symmetric by construction
			if got := tc.b.IntersectsSphere(tc.a); got != tc.expected {
				t.Errorf("IntersectsSphere() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSphereIntersectsBox(t *testing.T) {
	box := NewBox(Vec3{0, 0, 0}, 2, 2, 2) // unit cube around origin

	tests := []struct {
		name     string
		s        Sphere
		expected bool
	}{
		{"center inside", Sphere{Center: Vec3{0, 0, 0}, Radius: 0.1}, true},
		{"overlapping face", Sphere{Center: Vec3{1.5, 0, 0}, Radius: 0.6}, true},
		{"clear of face", Sphere{Center: Vec3{2.5, 0, 0}, Radius: 0.6}, false},
		{"near corner inside radius", Sphere{Center: Vec3{1.5, 1.5, 1.5}, Radius: 1.0}, true},
		{"near corner outside radius", Sphere{Center: Vec3{1.5, 1.5, 1.5}, Radius: 0.5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.s.IntersectsBox(box); got != tc.expected {
				t.Errorf("IntersectsBox() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestNewBoxExtents(t *testing.T) {
	b := NewBox(Vec3{1, 2, 3}, 2, 4, 6)

	if b.Min != (Vec3{0, 0, 0}) {
		t.Errorf("Min = %v, expected {0 0 0}", b.Min)
	}
	if b.Max != (Vec3{2, 4, 6}) {
		t.Errorf("Max = %v, expected {2 4 6}", b.Max)
	}
	if !b.Contains(Vec3{1, 2, 3}) {
		t.Error("box should contain its own center")
	}
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if a.Add(b) != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", a.Add(b))
	}
	if b.Sub(a) != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", b.Sub(a))
	}
	if a.Scale(2) != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", a.Scale(2))
	}
	if a.Dot(b) != 32 {
		t.Errorf("Dot = %v, expected 32", a.Dot(b))
	}

	// Cross of unit X and unit Y is unit Z
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v, expected {0 0 1}", got)
	}

	if math.Abs((Vec3{3, 4, 0}).Len()-5) > 1e-12 {
		t.Errorf("Len = %v, expected 5", (Vec3{3, 4, 0}).Len())
	}

	n := (Vec3{0, 0, 9}).Normalized()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalized length = %v, expected 1", n.Len())
	}
	if (Vec3{}).Normalized() != (Vec3{}) {
		t.Error("normalizing the zero vector should return it unchanged")
	}
}

func TestLerpVec3(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -10, 4}

	if LerpVec3(a, b, 0) != a {
		t.Error("t=0 should return the start point")
	}
	if LerpVec3(a, b, 1) != b {
		t.Error("t=1 should land exactly on the end point")
	}
	mid := LerpVec3(a, b, 0.5)
	if mid != (Vec3{5, -5, 2}) {
		t.Errorf("t=0.5 = %v, expected {5 -5 2}", mid)
	}
}
