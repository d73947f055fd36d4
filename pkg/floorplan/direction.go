package floorplan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/propdocs/floorsketch/pkg/geom"
)

// ViewDirection is one of the four cardinal directions a viewer can
// look at the building from.
type ViewDirection int

const (
	// ViewBack looks at the building from above on screen, so the
	// viewer-to-scene vector points down the Y axis.
	ViewBack ViewDirection = iota
	// ViewFront looks from below on screen.
	ViewFront
	// ViewLeft looks from the left edge of the screen.
	ViewLeft
	// ViewRight looks from the right edge of the screen.
	ViewRight
)

// ErrUnknownDirection is returned by ParseViewDirection for spellings
// outside the four cardinal directions.
var ErrUnknownDirection = errors.New("unknown view direction")

// String returns the lowercase name of the direction.
func (d ViewDirection) String() string {
	switch d {
	case ViewBack:
		return "back"
	case ViewFront:
		return "front"
	case ViewLeft:
		return "left"
	case ViewRight:
		return "right"
	default:
		return fmt.Sprintf("ViewDirection(%d)", int(d))
	}
}

// ParseViewDirection converts a spelling such as "back" or "LEFT" into
// a ViewDirection. Unknown spellings are rejected here at the input
// boundary; the Vector lookup itself never fails.
func ParseViewDirection(s string) (ViewDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "back":
		return ViewBack, nil
	case "front":
		return ViewFront, nil
	case "left":
		return ViewLeft, nil
	case "right":
		return ViewRight, nil
	default:
		return ViewBack, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Vector returns the unit viewer-to-scene vector for the direction in
// screen coordinates: the direction the viewer's gaze travels, not the
// side the viewer stands on. Values outside the enumeration fall back
// to the ViewBack vector so the lookup stays total.
func (d ViewDirection) Vector() geom.Vec2 {
	switch d {
	case ViewFront:
		return geom.Vec2{X: 0, Y: -1}
	case ViewLeft:
		return geom.Vec2{X: 1, Y: 0}
	case ViewRight:
		return geom.Vec2{X: -1, Y: 0}
	default:
		return geom.Vec2{X: 0, Y: 1}
	}
}

// Directions returns the four cardinal directions in a stable order,
// for callers that render or classify every side of a building.
func Directions() []ViewDirection {
	return []ViewDirection{ViewBack, ViewFront, ViewLeft, ViewRight}
}
