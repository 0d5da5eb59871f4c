// Package canvas - модель холста: единственный владелец списка размещенных элементов
// для выбранного шаблона зала.
//
// Canvas не потокобезопасен: мутации должны приходить последовательно
// (владелец сессии отвечает за синхронизацию).
package canvas

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/Festum-DesignService/internal/domain"
	"github.com/m04kA/Festum-DesignService/internal/layout"
)

// Options зависимости холста
type Options struct {
	Notifier  Notifier
	Autosaver Autosaver
	// NewID генератор идентификаторов элементов, по умолчанию uuid
	NewID func() string
}

// Canvas модель холста
type Canvas struct {
	template   *domain.RoomTemplate
	elements   []domain.PlacedElement
	selectedID string
	state      domain.CanvasState
	drag       layout.DragTracker
	notifier   Notifier
	autosaver  Autosaver
	newID      func() string
}

// New создает пустой холст (состояние Empty)
func New(opts Options) *Canvas {
	c := &Canvas{
		elements:  []domain.PlacedElement{},
		state:     domain.CanvasStateEmpty,
		notifier:  opts.Notifier,
		autosaver: opts.Autosaver,
		newID:     opts.NewID,
	}
	if c.notifier == nil {
		c.notifier = nopNotifier{}
	}
	if c.autosaver == nil {
		c.autosaver = nopAutosaver{}
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	return c
}

// SelectTemplate заменяет список элементов копией фиксированных элементов шаблона.
// Свободные элементы отбрасываются, выделение и перетаскивание сбрасываются.
// Автосохранение не вызывается: последний снимок свободных элементов остается в хранилище.
func (c *Canvas) SelectTemplate(template domain.RoomTemplate) {
	t := template
	t.FixedElements = template.FixedElementsCopy()
	c.template = &t
	c.elements = t.FixedElementsCopy()
	c.selectedID = ""
	c.drag.Reset()
	c.state = domain.CanvasStateTemplateSelected
	c.notifier.Notify(fmt.Sprintf(msgTemplateSelected, t.DisplayName))
}

// Restore выбирает шаблон и добавляет к нему ранее сохраненные свободные элементы.
// Элементы с ID фиксированных элементов пропускаются, позиции и размеры ограничиваются холстом.
// Возвращает количество восстановленных элементов.
func (c *Canvas) Restore(template domain.RoomTemplate, freeElements []domain.PlacedElement) int {
	c.SelectTemplate(template)

	seen := make(map[string]bool, len(c.elements)+len(freeElements))
	for _, e := range c.elements {
		seen[e.ID] = true
	}

	restored := 0
	for _, e := range freeElements {
		if e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		e.IsFixed = false
		e = normalize(e, c.template.CanvasSize)
		c.elements = append(c.elements, e)
		restored++
	}

	if restored > 0 {
		c.state = domain.CanvasStateEditing
	}
	c.notifier.Notify(fmt.Sprintf(msgDesignRestored, restored))
	return restored
}

// AddElement добавляет новый свободный элемент из каталога в указанную позицию
func (c *Canvas) AddElement(archetype domain.Archetype, position domain.Point) (domain.PlacedElement, bool) {
	if !c.requireTemplate() {
		return domain.PlacedElement{}, false
	}

	element := domain.PlacedElement{
		ID:              c.newID(),
		Kind:            archetype.Kind,
		DisplayName:     archetype.DisplayName,
		Position:        position,
		Size:            archetype.DefaultSize,
		Color:           archetype.Color,
		Icon:            archetype.Icon,
		RotationDegrees: 0,
		IsFixed:         false,
	}
	element.Position = layout.Clamp(element.Position, element.Size, c.template.CanvasSize)

	c.elements = append(c.elements, element)
	c.selectedID = element.ID
	c.mutated()
	c.notifier.Notify(fmt.Sprintf(msgElementAdded, element.DisplayName))
	return element, true
}

// DropArchetype добавляет элемент, центрированный относительно точки сброса
func (c *Canvas) DropArchetype(archetype domain.Archetype, dropPoint domain.Point, canvasOrigin domain.Point) (domain.PlacedElement, bool) {
	if !c.requireTemplate() {
		return domain.PlacedElement{}, false
	}
	position := layout.ComputeDropPosition(dropPoint, archetype.DefaultSize, canvasOrigin, c.template.CanvasSize)
	return c.AddElement(archetype, position)
}

// RemoveElement удаляет свободный элемент. Фиксированные элементы не удаляются.
func (c *Canvas) RemoveElement(id string) bool {
	if !c.requireTemplate() {
		return false
	}

	idx := c.indexOf(id)
	if idx < 0 {
		c.notifier.Notify(msgElementNotFound)
		return false
	}
	if c.isFixed(id) {
		c.notifier.Notify(msgCannotRemoveFixed)
		return false
	}

	removed := c.elements[idx]
	c.elements = append(c.elements[:idx], c.elements[idx+1:]...)
	if c.selectedID == id {
		c.selectedID = ""
	}
	if c.drag.Active() && c.drag.ElementID() == id {
		c.drag.Reset()
	}
	c.mutated()
	c.notifier.Notify(fmt.Sprintf(msgElementRemoved, removed.DisplayName))
	return true
}

// UpdateElement применяет mutator к свободному элементу.
// Результат нормализуется: стороны ограничиваются [25, 300], позиция - холстом,
// поворот привязывается к шагу 45 градусов в [0, 360).
// ID и признак фиксированности изменить нельзя.
func (c *Canvas) UpdateElement(id string, mutator Mutator) bool {
	if !c.requireTemplate() {
		return false
	}

	idx := c.indexOf(id)
	if idx < 0 {
		c.notifier.Notify(msgElementNotFound)
		return false
	}
	if c.isFixed(id) {
		c.notifier.Notify(msgCannotModifyFixed)
		return false
	}

	current := c.elements[idx]
	updated := mutator(current, c.template.CanvasSize)
	updated.ID = current.ID
	updated.IsFixed = false
	c.elements[idx] = normalize(updated, c.template.CanvasSize)
	c.mutated()
	return true
}

// Move сдвигает элемент на delta
func (c *Canvas) Move(id string, delta domain.Point) bool {
	return c.UpdateElement(id, func(e domain.PlacedElement, canvasSize domain.Size) domain.PlacedElement {
		e.Position = layout.ComputeDragPosition(e.Position, delta, e.Size, canvasSize)
		return e
	})
}

// Rotate поворачивает элемент на 45 градусов
func (c *Canvas) Rotate(id string) bool {
	return c.UpdateElement(id, func(e domain.PlacedElement, _ domain.Size) domain.PlacedElement {
		e.RotationDegrees = layout.NextRotation(e.RotationDegrees)
		return e
	})
}

// Grow увеличивает элемент в 1.2 раза
func (c *Canvas) Grow(id string) bool {
	return c.resize(id, domain.GrowFactor)
}

// Shrink уменьшает элемент в 0.8 раза
func (c *Canvas) Shrink(id string) bool {
	return c.resize(id, domain.ShrinkFactor)
}

// Nudge сдвигает элемент на 5 пикселей в направлении direction
func (c *Canvas) Nudge(id string, direction domain.Direction) bool {
	return c.UpdateElement(id, func(e domain.PlacedElement, canvasSize domain.Size) domain.PlacedElement {
		e.Position = layout.Nudge(e.Position, direction, domain.NudgeStepPixels, e.Size, canvasSize)
		return e
	})
}

// HandleDrag обрабатывает событие перетаскивания существующего элемента.
// DragStart на фиксированном элементе отклоняется с уведомлением,
// DragMove и DragEnd без активного перетаскивания игнорируются,
// а события для другого элемента отклоняются с уведомлением, не прерывая текущее перетаскивание.
func (c *Canvas) HandleDrag(event layout.DragEvent) bool {
	if !c.requireTemplate() {
		return false
	}

	switch e := event.(type) {
	case layout.DragStart:
		idx := c.indexOf(e.ElementID)
		if idx < 0 {
			c.notifier.Notify(msgElementNotFound)
			return false
		}
		if c.isFixed(e.ElementID) {
			c.notifier.Notify(msgCannotModifyFixed)
			return false
		}
		el := c.elements[idx]
		c.drag.Begin(e, el.Position, el.Size)
		c.selectedID = el.ID
		return true

	case layout.DragMove:
		return c.applyDrag(e.ElementID, e.Pointer, false)

	case layout.DragEnd:
		return c.applyDrag(e.ElementID, e.Pointer, true)

	default:
		return false
	}
}

// Select выделяет элемент (фиксированные элементы тоже можно выделить)
func (c *Canvas) Select(id string) bool {
	if c.indexOf(id) < 0 {
		c.notifier.Notify(msgElementNotFound)
		return false
	}
	c.selectedID = id
	return true
}

// ClearSelection снимает выделение
func (c *Canvas) ClearSelection() {
	c.selectedID = ""
}

// Selected возвращает ID выделенного элемента
func (c *Canvas) Selected() (string, bool) {
	return c.selectedID, c.selectedID != ""
}

// Elements возвращает копию всех элементов (фиксированных и свободных)
func (c *Canvas) Elements() []domain.PlacedElement {
	return domain.CloneElements(c.elements)
}

// ListFreeElements возвращает копию свободных элементов - только они сохраняются,
// фиксированные восстанавливаются из шаблона по его ID
func (c *Canvas) ListFreeElements() []domain.PlacedElement {
	out := make([]domain.PlacedElement, 0, len(c.elements))
	for _, e := range c.elements {
		if !e.IsFixed {
			out = append(out, e)
		}
	}
	return out
}

// Element возвращает копию элемента по ID
func (c *Canvas) Element(id string) (domain.PlacedElement, bool) {
	idx := c.indexOf(id)
	if idx < 0 {
		return domain.PlacedElement{}, false
	}
	return c.elements[idx], true
}

// Template возвращает выбранный шаблон
func (c *Canvas) Template() (domain.RoomTemplate, bool) {
	if c.template == nil {
		return domain.RoomTemplate{}, false
	}
	t := *c.template
	t.FixedElements = c.template.FixedElementsCopy()
	return t, true
}

// State возвращает текущее состояние холста
func (c *Canvas) State() domain.CanvasState {
	return c.state
}

func (c *Canvas) applyDrag(elementID string, pointer domain.Point, finish bool) bool {
	if !c.drag.Active() {
		return false
	}
	id := c.drag.ElementID()
	if elementID != id {
		c.notifier.Notify(msgDragOtherElement)
		return false
	}
	position := c.drag.Position(pointer, c.template.CanvasSize)
	if finish {
		c.drag.Reset()
	}

	return c.UpdateElement(id, func(e domain.PlacedElement, _ domain.Size) domain.PlacedElement {
		e.Position = position
		return e
	})
}

func (c *Canvas) resize(id string, factor float64) bool {
	return c.UpdateElement(id, func(e domain.PlacedElement, _ domain.Size) domain.PlacedElement {
		e.Size = layout.ResizeDefault(e.Size, factor)
		return e
	})
}

func (c *Canvas) requireTemplate() bool {
	if c.template == nil {
		c.notifier.Notify(msgNoTemplateSelected)
		return false
	}
	return true
}

func (c *Canvas) isFixed(id string) bool {
	return c.template != nil && c.template.IsFixedElement(id)
}

func (c *Canvas) indexOf(id string) int {
	for i, e := range c.elements {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (c *Canvas) mutated() {
	c.state = domain.CanvasStateEditing
	c.autosaver.Autosave(c.template.ID, c.ListFreeElements())
}

func normalize(e domain.PlacedElement, canvasSize domain.Size) domain.PlacedElement {
	e.RotationDegrees = layout.SnapRotation(e.RotationDegrees)
	e.Size = layout.ClampSize(e.Size)
	e.Position = layout.Clamp(e.Position, e.Size, canvasSize)
	return e
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

type nopAutosaver struct{}

func (nopAutosaver) Autosave(string, []domain.PlacedElement) {}
