package domain

// Archetype is an immutable catalog entry describing one kind of placeable item
type Archetype struct {
	ID          string
	Kind        string
	DisplayName string
	Icon        string
	Color       string
	DefaultSize Size
}

// PlacedElement is an element placed on the canvas, either by the user (free) or by the room template (fixed)
type PlacedElement struct {
	ID              string
	Kind            string
	DisplayName     string
	Position        Point
	Size            Size
	Color           string
	Icon            string
	RotationDegrees int
	IsFixed         bool
}

// Bounds returns the bottom-right corner of the element
func (e *PlacedElement) Bounds() Point {
	return Point{X: e.Position.X + e.Size.Width, Y: e.Position.Y + e.Size.Height}
}

// FitsIn returns true if the element lies entirely inside a canvas of the given size
func (e *PlacedElement) FitsIn(canvas Size) bool {
	b := e.Bounds()
	return e.Position.X >= 0 && e.Position.Y >= 0 && b.X <= canvas.Width && b.Y <= canvas.Height
}

// CloneElements returns a deep copy of the element list
func CloneElements(elements []PlacedElement) []PlacedElement {
	if elements == nil {
		return []PlacedElement{}
	}
	out := make([]PlacedElement, len(elements))
	copy(out, elements)
	return out
}
