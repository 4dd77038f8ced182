package putt

import (
	"testing"
)

func TestVector_Normalize(t *testing.T) {
	v := Vector{}
	u := v.Normalize()
	if u.X != 0.0 || u.Y != 0.0 {
		t.Errorf("Expected zero vector, got %v", u)
	}

	u = Vector{3, 4}.Normalize()
	if !u.Near(Vector{0.6, 0.8}, 1e-12) {
		t.Errorf("Expected 0.6,0.8, got %v", u)
	}
}

func TestVector_Reflect(t *testing.T) {
	v := Vector{1, -1}.Reflect(Vector{0, 1})
	if !v.Near(Vector{1, 1}, 1e-12) {
		t.Errorf("Expected 1,1, got %v", v)
	}

	// Normal component flips, tangential component is preserved.
	n := Vector{0, 1}
	in := Vector{3, -4}
	out := in.Reflect(n)
	if out.Dot(n) != -in.Dot(n) {
		t.Errorf("normal component = %f, want %f", out.Dot(n), -in.Dot(n))
	}
	if out.X != in.X {
		t.Errorf("tangential component changed: %f != %f", out.X, in.X)
	}
}

func TestVector_ClosestPointOnSegment(t *testing.T) {
	a := Vector{0, 0}
	b := Vector{10, 0}

	p := Vector{5, 5}.ClosestPointOnSegment(a, b)
	if !p.Equal(Vector{5, 0}) {
		t.Errorf("Expected 5,0, got %v", p)
	}

	// Projection clamps to the segment endpoints.
	p = Vector{-3, 2}.ClosestPointOnSegment(a, b)
	if !p.Equal(a) {
		t.Errorf("Expected %v, got %v", a, p)
	}
	p = Vector{15, -2}.ClosestPointOnSegment(a, b)
	if !p.Equal(b) {
		t.Errorf("Expected %v, got %v", b, p)
	}

	// Zero-length segment collapses to a.
	c := Vector{7, 7}
	p = Vector{42, 1}.ClosestPointOnSegment(c, c)
	if !p.Equal(c) {
		t.Errorf("Expected %v, got %v", c, p)
	}
}
