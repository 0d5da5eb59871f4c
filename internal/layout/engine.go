// Package layout содержит чистые геометрические вычисления для размещения элементов на холсте.
// Все функции без побочных эффектов: некорректные координаты не отклоняются, а ограничиваются холстом.
package layout

import (
	"math"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

// Clamp ограничивает позицию так, чтобы элемент целиком помещался на холсте.
// Если элемент больше холста по какой-то оси, позиция по этой оси равна 0.
func Clamp(position domain.Point, elementSize domain.Size, canvasSize domain.Size) domain.Point {
	return domain.Point{
		X: clampAxis(position.X, elementSize.Width, canvasSize.Width),
		Y: clampAxis(position.Y, elementSize.Height, canvasSize.Height),
	}
}

// ComputeDropPosition центрирует элемент относительно точки сброса и ограничивает результат холстом.
// dropPoint задан в координатах страницы, canvasOrigin - левый верхний угол холста в тех же координатах.
func ComputeDropPosition(dropPoint domain.Point, elementSize domain.Size, canvasOrigin domain.Point, canvasSize domain.Size) domain.Point {
	local := dropPoint.Sub(canvasOrigin)
	centered := domain.Point{
		X: local.X - elementSize.Width/2,
		Y: local.Y - elementSize.Height/2,
	}
	return Clamp(centered, elementSize, canvasSize)
}

// ComputeDragPosition прибавляет смещение перетаскивания к стартовой позиции
func ComputeDragPosition(startPosition domain.Point, dragDelta domain.Point, elementSize domain.Size, canvasSize domain.Size) domain.Point {
	return Clamp(startPosition.Add(dragDelta), elementSize, canvasSize)
}

// NextRotation поворачивает на 45 градусов по часовой стрелке, 315 -> 0
func NextRotation(current int) int {
	next := (current + domain.RotationStepDegrees) % domain.FullTurnDegrees
	if next < 0 {
		next += domain.FullTurnDegrees
	}
	return next
}

// Resize умножает обе стороны на factor, округляет до целых пикселей
// и ограничивает каждую сторону независимо диапазоном [minSide, maxSide].
// Преобразование с потерями: Grow затем Shrink не обязательно возвращает исходный размер.
func Resize(currentSize domain.Size, factor float64, minSide, maxSide float64) domain.Size {
	return domain.Size{
		Width:  clampSide(math.Round(currentSize.Width*factor), minSide, maxSide),
		Height: clampSide(math.Round(currentSize.Height*factor), minSide, maxSide),
	}
}

// ResizeDefault - Resize с границами по умолчанию (25..300)
func ResizeDefault(currentSize domain.Size, factor float64) domain.Size {
	return Resize(currentSize, factor, domain.MinElementSide, domain.MaxElementSide)
}

// ClampSize ограничивает каждую сторону диапазоном [MinElementSide, MaxElementSide]
func ClampSize(size domain.Size) domain.Size {
	return domain.Size{
		Width:  clampSide(size.Width, domain.MinElementSide, domain.MaxElementSide),
		Height: clampSide(size.Height, domain.MinElementSide, domain.MaxElementSide),
	}
}

// SnapRotation приводит угол к ближайшему кратному 45 градусам в диапазоне [0, 360)
func SnapRotation(degrees int) int {
	normalized := ((degrees % domain.FullTurnDegrees) + domain.FullTurnDegrees) % domain.FullTurnDegrees
	steps := int(math.Round(float64(normalized) / float64(domain.RotationStepDegrees)))
	return (steps * domain.RotationStepDegrees) % domain.FullTurnDegrees
}

// Nudge сдвигает позицию на step пикселей в одном из четырех направлений.
// Неизвестное направление оставляет позицию на месте (с ограничением холстом).
func Nudge(position domain.Point, direction domain.Direction, step float64, elementSize domain.Size, canvasSize domain.Size) domain.Point {
	delta := domain.Point{}
	switch direction {
	case domain.DirectionUp:
		delta.Y = -step
	case domain.DirectionDown:
		delta.Y = step
	case domain.DirectionLeft:
		delta.X = -step
	case domain.DirectionRight:
		delta.X = step
	}
	return Clamp(position.Add(delta), elementSize, canvasSize)
}

func clampAxis(value, elementDim, canvasDim float64) float64 {
	upper := canvasDim - elementDim
	if value > upper {
		value = upper
	}
	if value < 0 {
		value = 0
	}
	return value
}

func clampSide(value, minSide, maxSide float64) float64 {
	if math.IsNaN(value) || value < minSide {
		return minSide
	}
	if value > maxSide {
		return maxSide
	}
	return value
}
