package layout

import (
	"github.com/m04kA/Festum-DesignService/internal/domain"
)

// DragEvent событие одной из фаз перетаскивания: DragStart, DragMove или DragEnd
type DragEvent interface {
	Phase() DragPhase
	Target() string
	PointerPosition() domain.Point
}

// DragPhase фаза перетаскивания
type DragPhase string

const (
	PhaseStart DragPhase = "start"
	PhaseMove  DragPhase = "move"
	PhaseEnd   DragPhase = "end"
)

// DragStart нажатие указателя на элементе
type DragStart struct {
	ElementID string
	Pointer   domain.Point
}

// DragMove перемещение указателя при зажатой кнопке
type DragMove struct {
	ElementID string
	Pointer   domain.Point
}

// DragEnd отпускание указателя
type DragEnd struct {
	ElementID string
	Pointer   domain.Point
}

func (e DragStart) Phase() DragPhase              { return PhaseStart }
func (e DragStart) Target() string                { return e.ElementID }
func (e DragStart) PointerPosition() domain.Point { return e.Pointer }
func (e DragMove) Phase() DragPhase               { return PhaseMove }
func (e DragMove) Target() string                 { return e.ElementID }
func (e DragMove) PointerPosition() domain.Point  { return e.Pointer }
func (e DragEnd) Phase() DragPhase                { return PhaseEnd }
func (e DragEnd) Target() string                  { return e.ElementID }
func (e DragEnd) PointerPosition() domain.Point   { return e.Pointer }

// DragTracker хранит состояние одного перетаскивания и переводит события указателя в позиции элемента.
// Не потокобезопасен: события приходят последовательно.
type DragTracker struct {
	active        bool
	elementID     string
	startPointer  domain.Point
	startPosition domain.Point
	elementSize   domain.Size
}

// Begin начинает перетаскивание элемента из позиции startPosition
func (t *DragTracker) Begin(event DragStart, startPosition domain.Point, elementSize domain.Size) {
	t.active = true
	t.elementID = event.ElementID
	t.startPointer = event.Pointer
	t.startPosition = startPosition
	t.elementSize = elementSize
}

// Position вычисляет позицию элемента для текущего положения указателя
func (t *DragTracker) Position(pointer domain.Point, canvasSize domain.Size) domain.Point {
	return ComputeDragPosition(t.startPosition, pointer.Sub(t.startPointer), t.elementSize, canvasSize)
}

// Active возвращает true, если перетаскивание в процессе
func (t *DragTracker) Active() bool {
	return t.active
}

// ElementID возвращает ID перетаскиваемого элемента
func (t *DragTracker) ElementID() string {
	return t.elementID
}

// Reset завершает перетаскивание
func (t *DragTracker) Reset() {
	*t = DragTracker{}
}
