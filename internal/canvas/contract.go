package canvas

import "github.com/m04kA/Festum-DesignService/internal/domain"

// Notifier приемник уведомлений для пользователя (toast)
type Notifier interface {
	Notify(message string)
}

// Autosaver вызывается после каждой успешной мутации холста.
// Реализация не должна возвращать ошибки: сохранение выполняется по принципу best-effort.
type Autosaver interface {
	Autosave(templateID string, freeElements []domain.PlacedElement)
}

// Mutator изменяет копию элемента; результат будет повторно ограничен холстом
type Mutator func(element domain.PlacedElement, canvasSize domain.Size) domain.PlacedElement
