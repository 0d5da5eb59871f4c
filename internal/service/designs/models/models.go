package models

import (
	"time"

	"github.com/m04kA/Festum-DesignService/internal/autosave"
	"github.com/m04kA/Festum-DesignService/internal/domain"
)

// Request модели

// CreateDesignRequest запрос на открытие сессии дизайна
type CreateDesignRequest struct {
	WorkspaceID string `json:"workspaceId"`
	TemplateID  string `json:"templateId"`
}

// SelectTemplateRequest запрос на смену шаблона зала
type SelectTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

// AddElementRequest запрос на размещение элемента каталога.
// Если Position задан, элемент ставится в эту позицию, иначе центрируется на DropPoint.
type AddElementRequest struct {
	ArchetypeID  string `json:"archetypeId"`
	DropPoint    Point  `json:"dropPoint"`
	CanvasOrigin Point  `json:"canvasOrigin"`
	Position     *Point `json:"position,omitempty"`
}

// ElementAction действие над размещенным элементом
type ElementAction string

const (
	ActionMove   ElementAction = "move"
	ActionRotate ElementAction = "rotate"
	ActionGrow   ElementAction = "grow"
	ActionShrink ElementAction = "shrink"
	ActionNudge  ElementAction = "nudge"
	ActionSelect ElementAction = "select"
)

// UpdateElementRequest запрос на изменение элемента
type UpdateElementRequest struct {
	Action    ElementAction    `json:"action"`
	Delta     *Point           `json:"delta,omitempty"`
	Direction domain.Direction `json:"direction,omitempty"`
}

// DragRequest событие перетаскивания элемента
type DragRequest struct {
	Phase   string `json:"phase"`
	Pointer Point  `json:"pointer"`
}

// RestoreSource источник восстановления дизайна
type RestoreSource string

const (
	RestoreFromAutosave RestoreSource = "autosave"
	RestoreFromSaved    RestoreSource = "saved"
)

// RestoreRequest запрос на восстановление дизайна
type RestoreRequest struct {
	Source RestoreSource `json:"source"`
}

// Response модели

// Point координаты
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size размеры
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ArchetypeResponse элемент каталога
type ArchetypeResponse struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	DefaultSize Size   `json:"defaultSize"`
}

// ElementResponse размещенный элемент
type ElementResponse struct {
	ID              string `json:"id"`
	Kind            string `json:"kind"`
	DisplayName     string `json:"displayName"`
	Position        Point  `json:"position"`
	Size            Size   `json:"size"`
	Color           string `json:"color"`
	Icon            string `json:"icon"`
	RotationDegrees int    `json:"rotationDegrees"`
	IsFixed         bool   `json:"isFixed"`
}

// TemplateResponse шаблон зала
type TemplateResponse struct {
	ID            string            `json:"id"`
	DisplayName   string            `json:"displayName"`
	Kind          string            `json:"kind"`
	CanvasSize    Size              `json:"canvasSize"`
	FixedElements []ElementResponse `json:"fixedElements"`
}

// DesignResponse состояние сессии дизайна после операции
type DesignResponse struct {
	ID                string            `json:"id"`
	WorkspaceID       string            `json:"workspaceId"`
	State             string            `json:"state"`
	Template          *TemplateResponse `json:"template,omitempty"`
	Elements          []ElementResponse `json:"elements"`
	SelectedElementID *string           `json:"selectedElementId,omitempty"`
	Applied           bool              `json:"applied"`
	Notifications     []string          `json:"notifications"`
}

// SnapshotResponse сохраненный снимок дизайна (автосохранение или явное сохранение)
type SnapshotResponse struct {
	TemplateID   string            `json:"templateId"`
	TemplateName string            `json:"templateName,omitempty"`
	Elements     []ElementResponse `json:"elements"`
	SavedAt      time.Time         `json:"savedAt"`
	Version      string            `json:"version,omitempty"`
}

// Конвертеры

// ToDomainPoint конвертирует точку в доменную модель
func (p Point) ToDomainPoint() domain.Point {
	return domain.Point{X: p.X, Y: p.Y}
}

// FromDomainArchetype конвертирует элемент каталога
func FromDomainArchetype(a domain.Archetype) ArchetypeResponse {
	return ArchetypeResponse{
		ID:          a.ID,
		Kind:        a.Kind,
		DisplayName: a.DisplayName,
		Icon:        a.Icon,
		Color:       a.Color,
		DefaultSize: fromDomainSize(a.DefaultSize),
	}
}

// FromDomainArchetypes конвертирует список элементов каталога
func FromDomainArchetypes(list []domain.Archetype) []ArchetypeResponse {
	out := make([]ArchetypeResponse, len(list))
	for i, a := range list {
		out[i] = FromDomainArchetype(a)
	}
	return out
}

// FromDomainElement конвертирует размещенный элемент
func FromDomainElement(e domain.PlacedElement) ElementResponse {
	return ElementResponse{
		ID:              e.ID,
		Kind:            e.Kind,
		DisplayName:     e.DisplayName,
		Position:        Point{X: e.Position.X, Y: e.Position.Y},
		Size:            fromDomainSize(e.Size),
		Color:           e.Color,
		Icon:            e.Icon,
		RotationDegrees: e.RotationDegrees,
		IsFixed:         e.IsFixed,
	}
}

// FromDomainElements конвертирует список элементов
func FromDomainElements(list []domain.PlacedElement) []ElementResponse {
	out := make([]ElementResponse, len(list))
	for i, e := range list {
		out[i] = FromDomainElement(e)
	}
	return out
}

// FromDomainTemplate конвертирует шаблон зала
func FromDomainTemplate(t domain.RoomTemplate) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID,
		DisplayName:   t.DisplayName,
		Kind:          t.Kind,
		CanvasSize:    fromDomainSize(t.CanvasSize),
		FixedElements: FromDomainElements(t.FixedElements),
	}
}

// FromDomainTemplates конвертирует список шаблонов
func FromDomainTemplates(list []domain.RoomTemplate) []TemplateResponse {
	out := make([]TemplateResponse, len(list))
	for i, t := range list {
		out[i] = FromDomainTemplate(t)
	}
	return out
}

// FromAutosaveSnapshot конвертирует снимок автосохранения
func FromAutosaveSnapshot(s *autosave.AutosaveSnapshot) *SnapshotResponse {
	return &SnapshotResponse{
		TemplateID: s.TemplateID,
		Elements:   FromDomainElements(autosave.ToDomainElements(s.Elements)),
		SavedAt:    s.SavedAt,
	}
}

// FromSavedDesign конвертирует явно сохраненный дизайн
func FromSavedDesign(d *autosave.SavedDesign) *SnapshotResponse {
	return &SnapshotResponse{
		TemplateID:   d.TemplateID,
		TemplateName: d.TemplateName,
		Elements:     FromDomainElements(autosave.ToDomainElements(d.Elements)),
		SavedAt:      d.SavedAt,
		Version:      d.Version,
	}
}

func fromDomainSize(s domain.Size) Size {
	return Size{Width: s.Width, Height: s.Height}
}
