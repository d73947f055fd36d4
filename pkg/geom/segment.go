package geom

// Segment is a directed line segment from Start to End.
type Segment struct {
	Start, End Vec2
}

// Direction returns the vector from Start to End.
func (s Segment) Direction() Vec2 {
	return s.End.Sub(s.Start)
}

// Normal returns the unit normal obtained by rotating the segment
// direction 90 degrees clockwise. Degenerate segments (Start == End)
// yield the zero vector.
func (s Segment) Normal() Vec2 {
	return s.Direction().PerpCW().Normalize()
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() Vec2 {
	return Vec2{(s.Start.X + s.End.X) / 2, (s.Start.Y + s.End.Y) / 2}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}
