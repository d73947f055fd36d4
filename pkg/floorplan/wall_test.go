package floorplan

import (
	"errors"
	"math"
	"testing"

	"github.com/propdocs/floorsketch/pkg/geom"
)

func TestNewWall(t *testing.T) {
	pts := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 2}, {X: 0, Y: 2}}
	w, err := NewWall(pts)
	if err != nil {
		t.Fatalf("NewWall failed: %v", err)
	}

	if len(w.Points) != WallPointCount {
		t.Fatalf("got %d points, want %d", len(w.Points), WallPointCount)
	}
	for i, p := range pts {
		if w.Points[i] != p {
			t.Errorf("point %d = %v, want %v", i, w.Points[i], p)
		}
	}
	if w.Boundary {
		t.Error("new wall should not be marked as boundary")
	}

	// The wall owns its points; mutating the caller's slice must not
	// reach them.
	pts[0] = geom.Vec2{X: 99, Y: 99}
	if w.Points[0] == pts[0] {
		t.Error("NewWall did not copy its input points")
	}
}

func TestNewWall_WrongPointCount(t *testing.T) {
	for _, count := range []int{0, 1, 2, 3, 5, 8} {
		_, err := NewWall(make([]geom.Vec2, count))
		if !errors.Is(err, ErrInvalidWallShape) {
			t.Errorf("%d points: expected ErrInvalidWallShape, got %v", count, err)
		}
	}
}

func TestWall_WithBoundary(t *testing.T) {
	w := wallBetween(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, 10)

	marked := w.WithBoundary(true)
	if !marked.Boundary {
		t.Error("WithBoundary(true) did not set the flag")
	}
	if w.Boundary {
		t.Error("WithBoundary mutated the receiver")
	}

	cleared := marked.WithBoundary(false)
	if cleared.Boundary {
		t.Error("WithBoundary(false) did not clear the flag")
	}
}

func TestWall_Center(t *testing.T) {
	w, err := NewWall([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 4}, {X: 0, Y: 4}})
	if err != nil {
		t.Fatalf("NewWall failed: %v", err)
	}

	if got, want := w.Center(), (geom.Vec2{X: 5, Y: 2}); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestWall_CenterlineHorizontal(t *testing.T) {
	w := wallBetween(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, 10)

	cl, err := w.Centerline()
	if err != nil {
		t.Fatalf("Centerline failed: %v", err)
	}
	if got := cl.Length(); math.Abs(got-100) > 1e-9 {
		t.Errorf("centerline length = %v, want 100", got)
	}
	// A horizontal wall's centerline normal points along Y.
	n := cl.Normal()
	if math.Abs(n.Y) < 0.9 || math.Abs(n.X) > 0.1 {
		t.Errorf("centerline normal = %v, want vertical", n)
	}
}

func TestWall_CenterlineVertical(t *testing.T) {
	w := wallBetween(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 0, Y: 80}, 10)

	cl, err := w.Centerline()
	if err != nil {
		t.Fatalf("Centerline failed: %v", err)
	}
	if got := cl.Length(); math.Abs(got-80) > 1e-9 {
		t.Errorf("centerline length = %v, want 80", got)
	}
	n := cl.Normal()
	if math.Abs(n.X) < 0.9 || math.Abs(n.Y) > 0.1 {
		t.Errorf("centerline normal = %v, want horizontal", n)
	}
}

func TestWall_CenterlineMalformed(t *testing.T) {
	w := Wall{Points: []geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}}

	_, err := w.Centerline()
	if !errors.Is(err, ErrInvalidWallShape) {
		t.Errorf("expected ErrInvalidWallShape, got %v", err)
	}
}
