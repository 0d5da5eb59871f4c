package domain

// Point is a position on the canvas (top-left corner of an element) or a pointer coordinate
type Point struct {
	X float64
	Y float64
}

// Add returns p shifted by delta
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Sub returns the vector from other to p
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size represents width and height in canvas pixels
type Size struct {
	Width  float64
	Height float64
}

// Direction is a keyboard nudge direction
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// IsValid returns true if d is one of the four supported directions
func (d Direction) IsValid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	default:
		return false
	}
}
