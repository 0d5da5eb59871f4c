// Package catalog содержит фиксированный список элементов, которые можно разместить на плане зала.
package catalog

import (
	"fmt"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

var archetypes = []domain.Archetype{
	{ID: "mesa-rectangular", Kind: "mesa", DisplayName: "Mesa rectangular", Icon: "table_restaurant", Color: "#8d6e63", DefaultSize: domain.Size{Width: 120, Height: 60}},
	{ID: "mesa-redonda", Kind: "mesa", DisplayName: "Mesa redonda", Icon: "circle", Color: "#a1887f", DefaultSize: domain.Size{Width: 80, Height: 80}},
	{ID: "silla", Kind: "silla", DisplayName: "Silla", Icon: "chair", Color: "#6d4c41", DefaultSize: domain.Size{Width: 30, Height: 30}},
	{ID: "escenario", Kind: "escenario", DisplayName: "Escenario", Icon: "theater_comedy", Color: "#5e35b1", DefaultSize: domain.Size{Width: 200, Height: 100}},
	{ID: "pista-baile", Kind: "pista", DisplayName: "Pista de baile", Icon: "nightlife", Color: "#ec407a", DefaultSize: domain.Size{Width: 150, Height: 150}},
	{ID: "barra", Kind: "barra", DisplayName: "Barra de bebidas", Icon: "local_bar", Color: "#00897b", DefaultSize: domain.Size{Width: 160, Height: 40}},
	{ID: "buffet", Kind: "buffet", DisplayName: "Mesa de buffet", Icon: "restaurant", Color: "#fb8c00", DefaultSize: domain.Size{Width: 180, Height: 50}},
	{ID: "dj", Kind: "dj", DisplayName: "Cabina DJ", Icon: "headphones", Color: "#3949ab", DefaultSize: domain.Size{Width: 80, Height: 60}},
	{ID: "plantas", Kind: "decoracion", DisplayName: "Plantas", Icon: "local_florist", Color: "#43a047", DefaultSize: domain.Size{Width: 40, Height: 40}},
	{ID: "decoracion", Kind: "decoracion", DisplayName: "Decoración", Icon: "celebration", Color: "#fdd835", DefaultSize: domain.Size{Width: 50, Height: 50}},
}

// Catalog каталог размещаемых элементов
type Catalog struct {
	items []domain.Archetype
	index map[string]int
}

// New создает каталог со стандартным набором элементов
func New() *Catalog {
	return NewWithItems(archetypes)
}

// NewWithItems создает каталог из произвольного набора элементов
func NewWithItems(items []domain.Archetype) *Catalog {
	c := &Catalog{
		items: make([]domain.Archetype, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, a := range c.items {
		c.index[a.ID] = i
	}
	return c
}

// List возвращает копию всех элементов каталога в исходном порядке
func (c *Catalog) List() []domain.Archetype {
	out := make([]domain.Archetype, len(c.items))
	copy(out, c.items)
	return out
}

// Get возвращает элемент каталога по ID
func (c *Catalog) Get(id string) (domain.Archetype, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Archetype{}, fmt.Errorf("%w: id=%s", ErrArchetypeNotFound, id)
	}
	return c.items[i], nil
}
