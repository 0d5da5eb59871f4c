package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Festum-DesignService/internal/domain"
)

func TestRenderPNG(t *testing.T) {
	elements := []domain.PlacedElement{
		{ID: "escenario-centro", Position: domain.Point{X: 275, Y: 300}, Size: domain.Size{Width: 150, Height: 100}, Color: "#5e35b1", IsFixed: true},
		{ID: "el-1", Position: domain.Point{X: 10, Y: 10}, Size: domain.Size{Width: 120, Height: 60}, Color: "#ff0000", RotationDegrees: 45},
		{ID: "el-2", Position: domain.Point{X: 600, Y: 600}, Size: domain.Size{Width: 30, Height: 30}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, domain.Size{Width: 700, Height: 700}, elements))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 700, img.Bounds().Dx())
	assert.Equal(t, 700, img.Bounds().Dy())

	// центр фиксированного элемента залит его цветом
	r, g, b, _ := img.At(350, 350).RGBA()
	assert.Equal(t, uint32(0x5e), r>>8)
	assert.Equal(t, uint32(0x35), g>>8)
	assert.Equal(t, uint32(0xb1), b>>8)
}

func TestNewRenderer_DegenerateCanvas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPNG(&buf, domain.Size{}, nil))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
}
