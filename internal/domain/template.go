package domain

// RoomTemplate represents a room floor plan with its canvas size and non-removable elements.
// Templates are immutable once defined; consumers must copy FixedElements before mutating them.
type RoomTemplate struct {
	ID            string
	DisplayName   string
	Kind          string
	CanvasSize    Size
	FixedElements []PlacedElement
}

// IsFixedElement returns true if the element id belongs to the template's fixed set
func (t *RoomTemplate) IsFixedElement(id string) bool {
	for _, e := range t.FixedElements {
		if e.ID == id {
			return true
		}
	}
	return false
}

// FixedElementsCopy returns a deep copy of the fixed elements with IsFixed set
func (t *RoomTemplate) FixedElementsCopy() []PlacedElement {
	out := CloneElements(t.FixedElements)
	for i := range out {
		out[i].IsFixed = true
	}
	return out
}
