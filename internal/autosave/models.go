package autosave

import (
	"time"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

// ElementRecord сохраняемое представление размещенного элемента
type ElementRecord struct {
	ID       string  `json:"id"`
	Kind     string  `json:"tipo"`
	Name     string  `json:"nombre"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"ancho"`
	Height   float64 `json:"alto"`
	Color    string  `json:"color"`
	Icon     string  `json:"icono"`
	Rotation int     `json:"rotacion"`
}

// AutosaveSnapshot содержимое ключа festum_autosave_diseno
type AutosaveSnapshot struct {
	TemplateID string          `json:"plantillaId"`
	Elements   []ElementRecord `json:"elementos"`
	SavedAt    time.Time       `json:"fechaAutosave"`
}

// SavedDesign содержимое ключа festum_ultimo_diseno (явное сохранение)
type SavedDesign struct {
	TemplateID   string          `json:"plantillaId"`
	TemplateName string          `json:"plantillaNombre"`
	Elements     []ElementRecord `json:"elementos"`
	SavedAt      time.Time       `json:"fechaGuardado"`
	Version      string          `json:"version"`
}

// FromDomainElements конвертирует элементы холста в сохраняемые записи
func FromDomainElements(elements []domain.PlacedElement) []ElementRecord {
	out := make([]ElementRecord, len(elements))
	for i, e := range elements {
		out[i] = ElementRecord{
			ID:       e.ID,
			Kind:     e.Kind,
			Name:     e.DisplayName,
			X:        e.Position.X,
			Y:        e.Position.Y,
			Width:    e.Size.Width,
			Height:   e.Size.Height,
			Color:    e.Color,
			Icon:     e.Icon,
			Rotation: e.RotationDegrees,
		}
	}
	return out
}

// ToDomainElements конвертирует сохраненные записи в свободные элементы холста
func ToDomainElements(records []ElementRecord) []domain.PlacedElement {
	out := make([]domain.PlacedElement, len(records))
	for i, r := range records {
		out[i] = domain.PlacedElement{
			ID:              r.ID,
			Kind:            r.Kind,
			DisplayName:     r.Name,
			Position:        domain.Point{X: r.X, Y: r.Y},
			Size:            domain.Size{Width: r.Width, Height: r.Height},
			Color:           r.Color,
			Icon:            r.Icon,
			RotationDegrees: r.Rotation,
		}
	}
	return out
}
