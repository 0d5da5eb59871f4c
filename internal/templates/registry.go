// Package templates - реестр шаблонов залов с фиксированными элементами
package templates

import (
	"fmt"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

var defaultTemplate = domain.RoomTemplate{
	ID:          domain.DefaultTemplateID,
	DisplayName: "Lienzo vacío",
	Kind:        "vacio",
	CanvasSize:  domain.Size{Width: 800, Height: 600},
}

var builtin = []domain.RoomTemplate{
	{
		ID:          "salon-rectangular",
		DisplayName: "Salón rectangular",
		Kind:        "salon",
		CanvasSize:  domain.Size{Width: 800, Height: 600},
		FixedElements: []domain.PlacedElement{
			{ID: "escenario-fondo", Kind: "escenario", DisplayName: "Escenario", Position: domain.Point{X: 300, Y: 20}, Size: domain.Size{Width: 200, Height: 80}, Color: "#5e35b1", Icon: "theater_comedy"},
			{ID: "entrada-principal", Kind: "entrada", DisplayName: "Entrada", Position: domain.Point{X: 360, Y: 560}, Size: domain.Size{Width: 80, Height: 40}, Color: "#9e9e9e", Icon: "door_front"},
		},
	},
	{
		ID:          "salon-cuadrado",
		DisplayName: "Salón cuadrado",
		Kind:        "salon",
		CanvasSize:  domain.Size{Width: 700, Height: 700},
		FixedElements: []domain.PlacedElement{
			{ID: "escenario-centro", Kind: "escenario", DisplayName: "Escenario central", Position: domain.Point{X: 275, Y: 300}, Size: domain.Size{Width: 150, Height: 100}, Color: "#5e35b1", Icon: "theater_comedy"},
		},
	},
	{
		ID:          "jardin",
		DisplayName: "Jardín",
		Kind:        "exterior",
		CanvasSize:  domain.Size{Width: 900, Height: 600},
		FixedElements: []domain.PlacedElement{
			{ID: "fuente-jardin", Kind: "fuente", DisplayName: "Fuente", Position: domain.Point{X: 410, Y: 260}, Size: domain.Size{Width: 80, Height: 80}, Color: "#29b6f6", Icon: "water_drop"},
			{ID: "pergola", Kind: "pergola", DisplayName: "Pérgola", Position: domain.Point{X: 20, Y: 20}, Size: domain.Size{Width: 160, Height: 120}, Color: "#795548", Icon: "deck"},
		},
	},
	{
		ID:          "terraza",
		DisplayName: "Terraza",
		Kind:        "exterior",
		CanvasSize:  domain.Size{Width: 600, Height: 400},
		FixedElements: []domain.PlacedElement{
			{ID: "barandal", Kind: "barandal", DisplayName: "Barandal", Position: domain.Point{X: 0, Y: 380}, Size: domain.Size{Width: 600, Height: 20}, Color: "#607d8b", Icon: "fence"},
		},
	},
	defaultTemplate,
}

// Registry статический реестр шаблонов залов
type Registry struct {
	templates []domain.RoomTemplate
	fallback  domain.RoomTemplate
}

// NewRegistry создает реестр со встроенными шаблонами
func NewRegistry() *Registry {
	return NewRegistryWithTemplates(builtin, defaultTemplate)
}

// NewRegistryWithTemplates создает реестр из произвольного набора шаблонов
func NewRegistryWithTemplates(list []domain.RoomTemplate, fallback domain.RoomTemplate) *Registry {
	r := &Registry{
		templates: make([]domain.RoomTemplate, len(list)),
		fallback:  cloneTemplate(fallback),
	}
	for i, t := range list {
		r.templates[i] = cloneTemplate(t)
	}
	return r
}

// List возвращает копии всех шаблонов
func (r *Registry) List() []domain.RoomTemplate {
	out := make([]domain.RoomTemplate, len(r.templates))
	for i, t := range r.templates {
		out[i] = cloneTemplate(t)
	}
	return out
}

// Get возвращает копию шаблона по ID
func (r *Registry) Get(id string) (domain.RoomTemplate, error) {
	for _, t := range r.templates {
		if t.ID == id {
			return cloneTemplate(t), nil
		}
	}
	return domain.RoomTemplate{}, fmt.Errorf("%w: id=%s", ErrTemplateNotFound, id)
}

// GetOrDefault возвращает шаблон по ID или пустой шаблон по умолчанию.
// Второе значение false, если пришлось вернуть шаблон по умолчанию.
func (r *Registry) GetOrDefault(id string) (domain.RoomTemplate, bool) {
	t, err := r.Get(id)
	if err != nil {
		return r.Default(), false
	}
	return t, true
}

// Default возвращает пустой шаблон по умолчанию
func (r *Registry) Default() domain.RoomTemplate {
	return cloneTemplate(r.fallback)
}

func cloneTemplate(t domain.RoomTemplate) domain.RoomTemplate {
	t.FixedElements = t.FixedElementsCopy()
	return t
}
