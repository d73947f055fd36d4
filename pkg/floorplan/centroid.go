package floorplan

import "github.com/propdocs/floorsketch/pkg/geom"

// Centroid returns the average of every wall corner point across the
// list, a cheap stand-in for the building's interior. Returns the zero
// vector when the walls carry no points.
func Centroid(walls []Wall) geom.Vec2 {
	var sum geom.Vec2
	count := 0
	for _, w := range walls {
		for _, p := range w.Points {
			sum = sum.Add(p)
			count++
		}
	}
	if count == 0 {
		return geom.Vec2{}
	}
	return sum.Scale(1 / float64(count))
}

// OutwardNormal returns the segment's unit normal flipped, when needed,
// to point away from the given interior point. Unlike the winding-based
// normals the classifier reads off the outline, this orientation does
// not depend on traversal order.
//
// The classifier does not use this path: outline edges already wind so
// that their raw normals point outward. It survives for the normals
// debug renderer, which plots both orientations so inconsistent winding
// in source data shows up visually.
func OutwardNormal(seg geom.Segment, interior geom.Vec2) geom.Vec2 {
	normal := seg.Normal()
	toInterior := interior.Sub(seg.Midpoint())
	if normal.Dot(toInterior) > 0 {
		return normal.Scale(-1)
	}
	return normal
}
