// Package render turns wall lists into floor-plan sketch images.
package render

import (
	"errors"
	"fmt"

	"github.com/propdocs/floorsketch/pkg/floorplan"
)

// Format identifies an output image format.
type Format string

const (
	// FormatSVG is the sketch as a scalable vector image.
	FormatSVG Format = "svg"
	// FormatPNG is the sketch rasterized to a bitmap.
	FormatPNG Format = "png"
	// FormatNormalsSVG is a diagnostic overlay showing the
	// reconstructed outline and its outward normals.
	FormatNormalsSVG Format = "normals-svg"
)

// ErrUnknownFormat is returned for formats outside the enumeration.
var ErrUnknownFormat = errors.New("unknown render format")

// Drawing defaults.
const (
	DefaultWidth          = 200.0
	DefaultHeight         = 200.0
	DefaultHighlightColor = "#61A5D8"
	DefaultWallColor      = "#000000"
)

// Options carries the drawing parameters shared by all renderers. Zero
// values fall back to the package defaults.
type Options struct {
	Width          float64
	Height         float64
	HighlightColor string
	WallColor      string
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.HighlightColor == "" {
		o.HighlightColor = DefaultHighlightColor
	}
	if o.WallColor == "" {
		o.WallColor = DefaultWallColor
	}
	return o
}

// wallColor picks the fill for a wall based on its boundary flag.
func (o Options) wallColor(w floorplan.Wall) string {
	if w.Boundary {
		return o.HighlightColor
	}
	return o.WallColor
}

// Renderer renders a building's walls as seen from a view direction.
type Renderer interface {
	// Render produces the encoded image bytes.
	Render(walls []floorplan.Wall, dir floorplan.ViewDirection) ([]byte, error)
	// Extension returns the file extension for the format, without the
	// leading dot.
	Extension() string
}

// New creates the renderer for the given format.
func New(format Format, opts Options) (Renderer, error) {
	opts = opts.withDefaults()
	switch format {
	case FormatSVG:
		return &svgRenderer{opts: opts}, nil
	case FormatPNG:
		return &pngRenderer{opts: opts}, nil
	case FormatNormalsSVG:
		return &normalsRenderer{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// ParseFormat converts a string such as "svg" into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "png":
		return FormatPNG, nil
	case "normals-svg", "normals":
		return FormatNormalsSVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatNormalsSVG}
}
