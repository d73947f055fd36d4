package render

import (
	"fmt"
	"strings"

	"github.com/propdocs/floorsketch/pkg/floorplan"
)

// sketchPadding is the whitespace around the building in sketch output.
const sketchPadding = 10.0

// svgRenderer draws the sketch as flat SVG polygons: walls facing the
// viewer in the highlight color, the rest in the wall color. Stroke
// matches fill so thin walls stay readable at small sizes.
type svgRenderer struct {
	opts Options
}

func (r *svgRenderer) Extension() string { return "svg" }

func (r *svgRenderer) Render(walls []floorplan.Wall, dir floorplan.ViewDirection) ([]byte, error) {
	if len(walls) == 0 {
		return r.emptySVG(), nil
	}

	classified, err := floorplan.Classify(walls, dir)
	if err != nil {
		return nil, err
	}
	normalized := floorplan.NormalizeCoordinates(classified, r.opts.Width, r.opts.Height, sketchPadding)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMidYMid meet">`+"\n", r.opts.Width, r.opts.Height)
	for _, w := range normalized {
		color := r.opts.wallColor(w)
		fmt.Fprintf(&b, `<polygon points="%s" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n", pointsAttr(w), color, color)
	}
	b.WriteString("</svg>\n")
	return []byte(b.String()), nil
}

func (r *svgRenderer) emptySVG() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n", r.opts.Width, r.opts.Height)
	b.WriteString(`<text x="50%" y="50%" text-anchor="middle" fill="#999">No floor plan data</text>` + "\n")
	b.WriteString("</svg>\n")
	return []byte(b.String())
}

// pointsAttr formats the wall corners as an SVG polygon points list.
func pointsAttr(w floorplan.Wall) string {
	pts := make([]string, 0, len(w.Points))
	for _, p := range w.Points {
		pts = append(pts, fmt.Sprintf("%.2f,%.2f", p.X, p.Y))
	}
	return strings.Join(pts, " ")
}
