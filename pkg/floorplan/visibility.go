package floorplan

// visibilityEpsilon keeps edge-on walls, whose normal is perpendicular
// to the view vector, out of the visible set despite floating-point
// noise in the dot product.
const visibilityEpsilon = 1e-6

// VisibleIndices reports which walls face the viewer for the given
// direction, as a set of positions into the wall list. A wall is
// visible when the outward normal of its outline edge opposes the
// viewer-to-scene vector: dot(normal, view) < -epsilon. Walls edge-on
// to the viewer are not visible.
//
// Fewer than two walls cannot form a closed outline and yield an empty
// set without error.
func VisibleIndices(walls []Wall, dir ViewDirection) (map[int]bool, error) {
	if len(walls) < 2 {
		return map[int]bool{}, nil
	}
	outline, err := BuildOutline(walls)
	if err != nil {
		return nil, err
	}
	view := dir.Vector()
	visible := make(map[int]bool)
	for i := range outline.Vertices {
		if outline.Edge(i).Normal().Dot(view) < -visibilityEpsilon {
			visible[i] = true
		}
	}
	return visible, nil
}

// Classify returns a copy of the wall list with Boundary set on exactly
// the walls VisibleIndices reports for the direction. The input slice
// and its walls are never modified, so classifying the same list for
// several directions in a row sees identical input each time.
func Classify(walls []Wall, dir ViewDirection) ([]Wall, error) {
	visible, err := VisibleIndices(walls, dir)
	if err != nil {
		return nil, err
	}
	out := make([]Wall, len(walls))
	for i, w := range walls {
		out[i] = w.WithBoundary(visible[i])
	}
	return out, nil
}
