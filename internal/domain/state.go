package domain

// CanvasState represents the lifecycle state of a canvas
type CanvasState string

const (
	CanvasStateEmpty            CanvasState = "empty"
	CanvasStateTemplateSelected CanvasState = "template_selected"
	CanvasStateEditing          CanvasState = "editing"
)
