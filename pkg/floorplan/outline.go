package floorplan

import (
	"fmt"

	"github.com/propdocs/floorsketch/pkg/geom"
)

// adjacencyTolerance is the maximum distance between two end-cap
// midpoints for them to count as the same shared corner.
const adjacencyTolerance = 1.0

// Outline is the closed building outline reconstructed from the wall
// list. Vertex i is the corner shared by wall i-1 and wall i (taken
// cyclically), so edge i runs from vertex i to vertex i+1 along wall i.
//
// Fallbacks counts adjacent wall pairs that shared no corner within
// tolerance; for those the reconstruction fell back to the earlier
// wall's first end-cap midpoint. A non-zero count means the outline was
// still produced but the input geometry is suspect.
type Outline struct {
	Vertices  []geom.Vec2
	Fallbacks int
}

// Edge returns outline edge i as a segment from vertex i to the
// cyclically next vertex.
func (o Outline) Edge(i int) geom.Segment {
	n := len(o.Vertices)
	return geom.Segment{Start: o.Vertices[i], End: o.Vertices[(i+1)%n]}
}

// BuildOutline reconstructs the building outline from walls listed in
// cyclic order around the building. The outline is recomputed from the
// wall footprints on every call; nothing is cached between calls. An
// empty wall list yields an empty outline, and a wall with a malformed
// footprint fails the whole reconstruction.
func BuildOutline(walls []Wall) (Outline, error) {
	n := len(walls)
	if n == 0 {
		return Outline{}, nil
	}
	mids := make([][2]geom.Vec2, n)
	for i, w := range walls {
		a, b, err := w.shortEdgeMidpoints()
		if err != nil {
			return Outline{}, fmt.Errorf("wall %d: %w", i, err)
		}
		mids[i] = [2]geom.Vec2{a, b}
	}
	out := Outline{Vertices: make([]geom.Vec2, n)}
	for i := 0; i < n; i++ {
		prev := mids[(i-1+n)%n]
		v, ok := sharedCorner(prev, mids[i])
		if !ok {
			// No corner within tolerance: degrade to the earlier
			// wall's first end cap and keep the outline closed.
			v = prev[0]
			out.Fallbacks++
		}
		out.Vertices[i] = v
	}
	return out, nil
}

// sharedCorner scans the end-cap midpoints of two adjacent walls for
// the first pair within adjacencyTolerance of each other and returns
// the earlier wall's midpoint of that pair.
func sharedCorner(a, b [2]geom.Vec2) (geom.Vec2, bool) {
	for _, ma := range a {
		for _, mb := range b {
			if ma.Distance(mb) < adjacencyTolerance {
				return ma, true
			}
		}
	}
	return geom.Vec2{}, false
}
