// Package floorplan models 2D building floor plans as lists of wall
// footprints and decides which walls face a viewer looking at the
// building from one of the four cardinal directions.
//
// All coordinates are screen coordinates: X grows to the right, Y grows
// downward. Walls are thin rectangles; the order of the wall list is
// assumed to trace the building outline, so consecutive walls share a
// corner.
package floorplan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/propdocs/floorsketch/pkg/geom"
)

// WallPointCount is the number of corner points in a wall footprint.
const WallPointCount = 4

// ErrInvalidWallShape is returned when a wall footprint does not have
// exactly WallPointCount corner points.
var ErrInvalidWallShape = errors.New("wall footprint must have exactly 4 points")

// Wall is one wall segment's footprint: a thin rectangle with two long
// sides running along the wall and two short end caps where it meets
// its neighbours. Boundary marks the wall as facing the viewer for the
// direction it was last classified against.
type Wall struct {
	Points   []geom.Vec2
	Boundary bool
}

// NewWall builds a wall from its four corner points. The points are
// copied, so the caller may reuse the slice. Any other point count is
// rejected with ErrInvalidWallShape.
func NewWall(points []geom.Vec2) (Wall, error) {
	if len(points) != WallPointCount {
		return Wall{}, fmt.Errorf("%w: got %d", ErrInvalidWallShape, len(points))
	}
	pts := make([]geom.Vec2, WallPointCount)
	copy(pts, points)
	return Wall{Points: pts}, nil
}

// check validates the footprint shape without constructing anything.
func (w Wall) check() error {
	if len(w.Points) != WallPointCount {
		return fmt.Errorf("%w: got %d", ErrInvalidWallShape, len(w.Points))
	}
	return nil
}

// WithBoundary returns a copy of the wall with the boundary flag set to
// the given value. The receiver is left untouched.
func (w Wall) WithBoundary(boundary bool) Wall {
	return Wall{Points: w.Points, Boundary: boundary}
}

// Center returns the average of the wall's corner points.
func (w Wall) Center() geom.Vec2 {
	var c geom.Vec2
	if len(w.Points) == 0 {
		return c
	}
	for _, p := range w.Points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(w.Points)))
}

// Centerline returns the segment running along the wall, from the
// midpoint of one short end cap to the midpoint of the other.
func (w Wall) Centerline() (geom.Segment, error) {
	a, b, err := w.shortEdgeMidpoints()
	if err != nil {
		return geom.Segment{}, err
	}
	return geom.Segment{Start: a, End: b}, nil
}

// shortEdgeMidpoints returns the midpoints of the two shortest edges of
// the footprint rectangle, the end caps where the wall butts against
// its neighbours. Ordering is by ascending edge length and stable for
// ties, so near-square footprints still produce a deterministic pair.
func (w Wall) shortEdgeMidpoints() (geom.Vec2, geom.Vec2, error) {
	if err := w.check(); err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}
	type capEdge struct {
		length float64
		mid    geom.Vec2
	}
	edges := make([]capEdge, 0, WallPointCount)
	for i := 0; i < WallPointCount; i++ {
		e := geom.Segment{Start: w.Points[i], End: w.Points[(i+1)%WallPointCount]}
		edges = append(edges, capEdge{length: e.Length(), mid: e.Midpoint()})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].length < edges[j].length })
	return edges[0].mid, edges[1].mid, nil
}
