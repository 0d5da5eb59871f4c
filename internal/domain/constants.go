package domain

// Layout engine defaults
const (
	RotationStepDegrees = 45
	FullTurnDegrees     = 360
	MinElementSide      = 25
	MaxElementSide      = 300
	GrowFactor          = 1.2
	ShrinkFactor        = 0.8
	NudgeStepPixels     = 5
)

// Persisted state keys (key-value store)
const (
	AutosaveKey    = "festum_autosave_diseno"
	SavedDesignKey = "festum_ultimo_diseno"
	DesignVersion  = "1.0"
)

// DefaultTemplateID is the empty template used when an unknown template id is requested
const DefaultTemplateID = "vacio"

// DefaultWorkspaceID scopes persisted state when the client does not identify itself
const DefaultWorkspaceID = "default"
