package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

func TestRegistry_GetSalonCuadrado(t *testing.T) {
	r := NewRegistry()

	tpl, err := r.Get("salon-cuadrado")
	require.NoError(t, err)

	assert.Equal(t, domain.Size{Width: 700, Height: 700}, tpl.CanvasSize)
	require.Len(t, tpl.FixedElements, 1)
	assert.Equal(t, "escenario-centro", tpl.FixedElements[0].ID)
	assert.True(t, tpl.FixedElements[0].IsFixed)
}

func TestRegistry_UnknownTemplate(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("castillo")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	tpl, found := r.GetOrDefault("castillo")
	assert.False(t, found)
	assert.Equal(t, domain.DefaultTemplateID, tpl.ID)
	assert.Empty(t, tpl.FixedElements)
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewRegistry()

	tpl, err := r.Get("salon-cuadrado")
	require.NoError(t, err)
	tpl.FixedElements[0].Position = domain.Point{X: 1, Y: 1}

	again, err := r.Get("salon-cuadrado")
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 275, Y: 300}, again.FixedElements[0].Position)
}

func TestRegistry_FixedElementsFitCanvas(t *testing.T) {
	for _, tpl := range NewRegistry().List() {
		for _, e := range tpl.FixedElements {
			assert.True(t, e.FitsIn(tpl.CanvasSize), "template %s element %s", tpl.ID, e.ID)
		}
	}
}
