package floorplan

import (
	"testing"

	"github.com/propdocs/floorsketch/pkg/geom"
)

func TestCentroid(t *testing.T) {
	if got, want := Centroid(squareBuilding()), (geom.Vec2{X: 50, Y: 50}); got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestCentroid_Empty(t *testing.T) {
	if got := Centroid(nil); got != (geom.Vec2{}) {
		t.Errorf("Centroid(nil) = %v, want zero vector", got)
	}
}

func TestOutwardNormal_IgnoresWinding(t *testing.T) {
	// The top edge of a square with the interior below it: the outward
	// normal points up regardless of traversal order.
	interior := geom.Vec2{X: 50, Y: 50}
	want := geom.Vec2{X: 0, Y: -1}

	fwd := geom.Segment{Start: geom.Vec2{X: 0, Y: 0}, End: geom.Vec2{X: 100, Y: 0}}
	if got := OutwardNormal(fwd, interior); got != want {
		t.Errorf("forward traversal: OutwardNormal() = %v, want %v", got, want)
	}

	rev := geom.Segment{Start: geom.Vec2{X: 100, Y: 0}, End: geom.Vec2{X: 0, Y: 0}}
	if got := OutwardNormal(rev, interior); got != want {
		t.Errorf("reverse traversal: OutwardNormal() = %v, want %v", got, want)
	}
}
