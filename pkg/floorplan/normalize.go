package floorplan

import (
	"math"

	"github.com/propdocs/floorsketch/pkg/geom"
)

// BoundingBox returns the axis-aligned bounds of every corner point
// across the walls. ok is false when the walls carry no points at all.
func BoundingBox(walls []Wall) (min, max geom.Vec2, ok bool) {
	for _, w := range walls {
		for _, p := range w.Points {
			if !ok {
				min, max, ok = p, p, true
				continue
			}
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return min, max, ok
}

// Transform maps plan coordinates into viewport coordinates with a
// uniform scale followed by a translation.
type Transform struct {
	scale   float64
	min     geom.Vec2
	padding float64
}

// Apply maps a single plan point into the viewport.
func (t Transform) Apply(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: t.padding + (p.X-t.min.X)*t.scale,
		Y: t.padding + (p.Y-t.min.Y)*t.scale,
	}
}

// FitTransform returns the viewport transform NormalizeCoordinates
// applies to every wall point: a single uniform scale preserving the
// aspect ratio, then a translation placing the bounding box inside the
// viewport with the given padding on each side. ok is false when the
// walls carry no points or their bounding box has zero width or
// height; the returned transform is then the identity.
func FitTransform(walls []Wall, targetWidth, targetHeight, padding float64) (Transform, bool) {
	min, max, ok := BoundingBox(walls)
	if !ok {
		return Transform{scale: 1}, false
	}
	width := max.X - min.X
	height := max.Y - min.Y
	if width == 0 || height == 0 {
		return Transform{scale: 1}, false
	}
	scale := math.Min((targetWidth-2*padding)/width, (targetHeight-2*padding)/height)
	return Transform{scale: scale, min: min, padding: padding}, true
}

// NormalizeCoordinates maps the walls into a target viewport through
// FitTransform. Wall order and boundary flags survive the transform;
// the input walls are left untouched.
//
// Input whose bounding box has zero width or zero height cannot be
// scaled and is returned as-is. An empty wall list stays empty.
func NormalizeCoordinates(walls []Wall, targetWidth, targetHeight, padding float64) []Wall {
	if len(walls) == 0 {
		return []Wall{}
	}
	tr, ok := FitTransform(walls, targetWidth, targetHeight, padding)
	if !ok {
		return walls
	}
	out := make([]Wall, len(walls))
	for i, w := range walls {
		pts := make([]geom.Vec2, len(w.Points))
		for j, p := range w.Points {
			pts[j] = tr.Apply(p)
		}
		out[i] = Wall{Points: pts, Boundary: w.Boundary}
	}
	return out
}
