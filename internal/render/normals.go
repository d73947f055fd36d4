package render

import (
	"fmt"
	"strings"

	"github.com/propdocs/floorsketch/pkg/floorplan"
)

// Debug overlay geometry.
const (
	debugPadding = 50.0
	arrowLength  = 30.0
)

const arrowDefs = `<defs>
<marker id="arrow" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto">
<path d="M0,0 L0,6 L9,3 z" fill="red"/>
</marker>
<marker id="arrowAlt" markerWidth="10" markerHeight="10" refX="9" refY="3" orient="auto">
<path d="M0,0 L0,6 L9,3 z" fill="orange"/>
</marker>
</defs>
`

// normalsRenderer draws what the classifier works from: grey wall
// footprints, the reconstructed outline in green, outward normals as
// red arrows, and the wall index at each edge. When the winding normal
// disagrees with the centroid-flipped orientation a second orange arrow
// appears, so inconsistently wound source data is visible at a glance.
// The view direction plays no part in the overlay.
type normalsRenderer struct {
	opts Options
}

func (r *normalsRenderer) Extension() string { return "svg" }

func (r *normalsRenderer) Render(walls []floorplan.Wall, _ floorplan.ViewDirection) ([]byte, error) {
	w, h := r.opts.Width, r.opts.Height

	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(&b, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n", w, h)
	b.WriteString(arrowDefs)
	b.WriteString(`<rect width="100%" height="100%" fill="#f5f5f5"/>` + "\n")

	if len(walls) == 0 {
		b.WriteString(`<text x="50%" y="50%" text-anchor="middle" fill="#999">No floor plan data</text>` + "\n")
		b.WriteString("</svg>\n")
		return []byte(b.String()), nil
	}

	normalized := floorplan.NormalizeCoordinates(walls, w, h, debugPadding)
	for _, wall := range normalized {
		fmt.Fprintf(&b, `<polygon points="%s" fill="#ddd" stroke="#000" stroke-width="1"/>`+"\n", pointsAttr(wall))
	}

	// Reconstruct from the raw coordinates that classification reads:
	// the corner-sharing tolerance must not see viewport-scaled
	// distances. Only drawing positions go through the transform;
	// normal directions are unchanged by it.
	outline, err := floorplan.BuildOutline(walls)
	if err != nil {
		return nil, err
	}
	tr, _ := floorplan.FitTransform(walls, w, h, debugPadding)
	centroid := floorplan.Centroid(walls)

	for i := range outline.Vertices {
		edge := outline.Edge(i)
		start, end := tr.Apply(edge.Start), tr.Apply(edge.End)
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="green" stroke-width="2"/>`+"\n",
			start.X, start.Y, end.X, end.Y)

		mid := tr.Apply(edge.Midpoint())
		normal := edge.Normal()
		tip := mid.Add(normal.Scale(arrowLength))
		fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="red" stroke-width="2" marker-end="url(#arrow)"/>`+"\n",
			mid.X, mid.Y, tip.X, tip.Y)

		if flipped := floorplan.OutwardNormal(edge, centroid); flipped.Dot(normal) < 0 {
			alt := mid.Add(flipped.Scale(arrowLength))
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="orange" stroke-width="2" marker-end="url(#arrowAlt)"/>`+"\n",
				mid.X, mid.Y, alt.X, alt.Y)
		}

		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="10" fill="blue">%d</text>`+"\n",
			mid.X, mid.Y-10, i)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}
