package geom

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Dot(t *testing.T) {
	right := Vec2{1, 0}
	down := Vec2{0, 1}

	if got := right.Dot(down); got != 0 {
		t.Errorf("perpendicular vectors: Dot() = %v, want 0", got)
	}
	if got := right.Dot(right); got != 1 {
		t.Errorf("parallel vectors: Dot() = %v, want 1", got)
	}
	if got := right.Dot(Vec2{-1, 0}); got != -1 {
		t.Errorf("opposite vectors: Dot() = %v, want -1", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if math.Abs(n.X-0.6) > 1e-9 || math.Abs(n.Y-0.8) > 1e-9 {
		t.Errorf("Vec2.Normalize() = %v, want (0.6, 0.8)", n)
	}
	if l := n.Length(); math.Abs(l-1) > 1e-9 {
		t.Errorf("Vec2.Normalize().Length() = %v, want 1", l)
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	got := Vec2{}.Normalize()
	if got != (Vec2{}) {
		t.Errorf("zero vector Normalize() = %v, want zero vector", got)
	}
}

func TestVec2PerpCW(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"right becomes up", Vec2{1, 0}, Vec2{0, -1}},
		{"up becomes left", Vec2{0, -1}, Vec2{-1, 0}},
		{"left becomes down", Vec2{-1, 0}, Vec2{0, 1}},
		{"down becomes right", Vec2{0, 1}, Vec2{1, 0}},
	}

	for _, tc := range tests {
		if got := tc.v.PerpCW(); got != tc.want {
			t.Errorf("%s: PerpCW(%v) = %v, want %v", tc.name, tc.v, got, tc.want)
		}
	}
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{1, 1}
	b := Vec2{4, 5}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
}

func TestSegmentDirection(t *testing.T) {
	s := Segment{Start: Vec2{1, 1}, End: Vec2{4, 5}}
	got := s.Direction()
	want := Vec2{3, 4}
	if got != want {
		t.Errorf("Segment.Direction() = %v, want %v", got, want)
	}
}

func TestSegmentNormal(t *testing.T) {
	// Horizontal segment pointing right: CW rotation gives a normal
	// pointing up (negative Y in screen coordinates).
	s := Segment{Start: Vec2{0, 0}, End: Vec2{10, 0}}
	got := s.Normal()
	want := Vec2{0, -1}
	if got != want {
		t.Errorf("Segment.Normal() = %v, want %v", got, want)
	}
}

func TestSegmentNormalDegenerate(t *testing.T) {
	s := Segment{Start: Vec2{5, 5}, End: Vec2{5, 5}}
	if got := s.Normal(); got != (Vec2{}) {
		t.Errorf("degenerate Segment.Normal() = %v, want zero vector", got)
	}
}

func TestSegmentMidpoint(t *testing.T) {
	s := Segment{Start: Vec2{0, 0}, End: Vec2{10, 6}}
	got := s.Midpoint()
	want := Vec2{5, 3}
	if got != want {
		t.Errorf("Segment.Midpoint() = %v, want %v", got, want)
	}
}

func TestSegmentLength(t *testing.T) {
	s := Segment{Start: Vec2{0, 0}, End: Vec2{3, 4}}
	if got := s.Length(); got != 5 {
		t.Errorf("Segment.Length() = %v, want 5", got)
	}
}
