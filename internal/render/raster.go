package render

import (
	"bytes"
	"fmt"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/propdocs/floorsketch/pkg/floorplan"
)

// pngRenderer rasterizes the sketch onto a white canvas with the same
// classify-normalize pipeline as the SVG renderer.
type pngRenderer struct {
	opts Options
}

func (r *pngRenderer) Extension() string { return "png" }

func (r *pngRenderer) Render(walls []floorplan.Wall, dir floorplan.ViewDirection) ([]byte, error) {
	width, height := canvasSize(r.opts.Width), canvasSize(r.opts.Height)
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if len(walls) == 0 {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetHexColor("#999999")
		dc.DrawStringAnchored("No floor plan data", float64(width)/2, float64(height)/2, 0.5, 0.5)
		return encodePNG(dc)
	}

	classified, err := floorplan.Classify(walls, dir)
	if err != nil {
		return nil, err
	}
	normalized := floorplan.NormalizeCoordinates(classified, float64(width), float64(height), sketchPadding)

	for _, w := range normalized {
		for i, p := range w.Points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.ClosePath()
		dc.SetHexColor(r.opts.wallColor(w))
		dc.FillPreserve()
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}
	return encodePNG(dc)
}

// canvasSize rounds a configured dimension to whole pixels. The result
// is at least 1: a zero-size canvas cannot be PNG-encoded.
func canvasSize(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		return 1
	}
	return n
}

func encodePNG(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
