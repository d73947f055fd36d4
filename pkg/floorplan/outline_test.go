package floorplan

import (
	"errors"
	"math"
	"testing"

	"github.com/propdocs/floorsketch/pkg/geom"
)

func TestBuildOutline_Square(t *testing.T) {
	outline, err := BuildOutline(squareBuilding())
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}

	want := []geom.Vec2{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	if len(outline.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(outline.Vertices), len(want))
	}
	for i, v := range outline.Vertices {
		if v != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}
	if outline.Fallbacks != 0 {
		t.Errorf("Fallbacks = %d, want 0", outline.Fallbacks)
	}
}

func TestBuildOutline_EdgeRunsAlongItsWall(t *testing.T) {
	walls := steppedBuilding()
	outline, err := BuildOutline(walls)
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}
	if len(outline.Vertices) != len(walls) {
		t.Fatalf("got %d vertices, want %d", len(outline.Vertices), len(walls))
	}
	if outline.Fallbacks != 0 {
		t.Errorf("Fallbacks = %d, want 0", outline.Fallbacks)
	}

	for i, w := range walls {
		cl, err := w.Centerline()
		if err != nil {
			t.Fatalf("wall %d Centerline failed: %v", i, err)
		}
		d := outline.Edge(i).Direction()
		c := cl.Direction()
		if cross := d.X*c.Y - d.Y*c.X; math.Abs(cross) > 1e-9 {
			t.Errorf("edge %d direction %v not parallel to wall %d centerline %v", i, d, i, c)
		}
	}
}

func TestBuildOutline_DisconnectedWallsFallBack(t *testing.T) {
	a := wallBetween(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, 10)
	b := wallBetween(geom.Vec2{X: 500, Y: 500}, geom.Vec2{X: 600, Y: 500}, 10)

	outline, err := BuildOutline([]Wall{a, b})
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}

	if outline.Fallbacks != 2 {
		t.Errorf("Fallbacks = %d, want 2", outline.Fallbacks)
	}
	if len(outline.Vertices) != 2 {
		t.Fatalf("got %d vertices, want 2", len(outline.Vertices))
	}
	// Each vertex degrades to the earlier wall's first end-cap
	// midpoint, which for these rectangles is the max-x end.
	if want := (geom.Vec2{X: 600, Y: 500}); outline.Vertices[0] != want {
		t.Errorf("vertex 0 = %v, want %v", outline.Vertices[0], want)
	}
	if want := (geom.Vec2{X: 100, Y: 0}); outline.Vertices[1] != want {
		t.Errorf("vertex 1 = %v, want %v", outline.Vertices[1], want)
	}
}

func TestBuildOutline_Empty(t *testing.T) {
	outline, err := BuildOutline(nil)
	if err != nil {
		t.Fatalf("BuildOutline failed: %v", err)
	}
	if len(outline.Vertices) != 0 || outline.Fallbacks != 0 {
		t.Errorf("empty input: got %d vertices, %d fallbacks", len(outline.Vertices), outline.Fallbacks)
	}
}

func TestBuildOutline_MalformedWall(t *testing.T) {
	walls := []Wall{
		wallBetween(geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, 10),
		{Points: []geom.Vec2{{X: 0, Y: 0}}},
	}

	_, err := BuildOutline(walls)
	if !errors.Is(err, ErrInvalidWallShape) {
		t.Errorf("expected ErrInvalidWallShape, got %v", err)
	}
}
