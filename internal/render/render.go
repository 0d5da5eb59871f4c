// Package render рисует PNG-превью плана зала
package render

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

const (
	backgroundColor = "#fafafa"
	gridColor       = "#e0e0e0"
	fixedOutline    = "#212121"
	freeOutline     = "#616161"
	defaultFill     = "#90a4ae"
	gridStep        = 50
)

// Renderer рисует холст с элементами
type Renderer struct {
	context *gg.Context
	canvas  domain.Size
}

// NewRenderer создает рендерер для холста заданного размера
func NewRenderer(canvas domain.Size) *Renderer {
	width := int(math.Max(1, math.Ceil(canvas.Width)))
	height := int(math.Max(1, math.Ceil(canvas.Height)))
	return &Renderer{
		context: gg.NewContext(width, height),
		canvas:  canvas,
	}
}

// Render рисует фон, сетку и элементы в порядке списка (фиксированные обычно первыми)
func (r *Renderer) Render(elements []domain.PlacedElement) {
	r.context.SetHexColor(backgroundColor)
	r.context.Clear()
	r.drawGrid()

	for _, e := range elements {
		r.drawElement(e)
	}
}

// EncodePNG записывает изображение в w
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := r.context.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RenderPNG рисует элементы и сразу пишет PNG
func RenderPNG(w io.Writer, canvas domain.Size, elements []domain.PlacedElement) error {
	r := NewRenderer(canvas)
	r.Render(elements)
	return r.EncodePNG(w)
}

func (r *Renderer) drawGrid() {
	r.context.SetHexColor(gridColor)
	r.context.SetLineWidth(1)
	for x := float64(gridStep); x < r.canvas.Width; x += gridStep {
		r.context.DrawLine(x, 0, x, r.canvas.Height)
	}
	for y := float64(gridStep); y < r.canvas.Height; y += gridStep {
		r.context.DrawLine(0, y, r.canvas.Width, y)
	}
	r.context.Stroke()
}

func (r *Renderer) drawElement(e domain.PlacedElement) {
	cx := e.Position.X + e.Size.Width/2
	cy := e.Position.Y + e.Size.Height/2

	r.context.Push()
	defer r.context.Pop()

	// поворот вокруг центра элемента, как в браузере (transform-origin: center)
	if e.RotationDegrees != 0 {
		r.context.RotateAbout(gg.Radians(float64(e.RotationDegrees)), cx, cy)
	}

	r.context.DrawRectangle(e.Position.X, e.Position.Y, e.Size.Width, e.Size.Height)
	r.context.SetHexColor(fillColor(e))
	r.context.FillPreserve()

	if e.IsFixed {
		r.context.SetHexColor(fixedOutline)
		r.context.SetLineWidth(3)
		r.context.SetDash(6, 4)
	} else {
		r.context.SetHexColor(freeOutline)
		r.context.SetLineWidth(1.5)
	}
	r.context.Stroke()
}

func fillColor(e domain.PlacedElement) string {
	if e.Color == "" {
		return defaultFill
	}
	return e.Color
}
