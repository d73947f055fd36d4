// Package walldata loads wall footprints from the JSON interchange
// format produced by floor-plan scanning tools: an object with a
// "walls" array, each wall an array of [x, y] corner pairs.
package walldata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/propdocs/floorsketch/pkg/floorplan"
	"github.com/propdocs/floorsketch/pkg/geom"
)

// Wall data errors.
var (
	ErrInvalidFormat = errors.New("invalid wall data: expected a JSON object with a \"walls\" array")
	ErrBadCoordinate = errors.New("wall coordinate must be an [x, y] pair")
)

// document mirrors the on-disk layout. Coordinates stay as raw slices
// so shape errors surface as ErrBadCoordinate instead of being silently
// truncated or zero-padded.
type document struct {
	Walls [][][]float64 `json:"walls"`
}

// Parse decodes wall data from raw JSON. Every wall must carry exactly
// four [x, y] corner pairs; a malformed wall fails the whole document
// with the wall's position in the error.
func Parse(data []byte) ([]floorplan.Wall, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Walls == nil {
		return nil, fmt.Errorf("%w: missing \"walls\" key", ErrInvalidFormat)
	}

	walls := make([]floorplan.Wall, 0, len(doc.Walls))
	for i, raw := range doc.Walls {
		pts := make([]geom.Vec2, 0, len(raw))
		for j, pair := range raw {
			if len(pair) != 2 {
				return nil, fmt.Errorf("wall %d point %d: %w: got %d values", i, j, ErrBadCoordinate, len(pair))
			}
			pts = append(pts, geom.Vec2{X: pair[0], Y: pair[1]})
		}
		w, err := floorplan.NewWall(pts)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		walls = append(walls, w)
	}
	return walls, nil
}

// ParseFile loads wall data from disk.
func ParseFile(path string) ([]floorplan.Wall, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading wall data file: %w", err)
	}
	return Parse(data)
}
