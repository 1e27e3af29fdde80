package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeMarker(t *testing.T) {
	img, err := RasterizeMarker(MarkerSize)
	require.NoError(t, err)
	assert.Equal(t, MarkerSize, img.Bounds().Dx())
	assert.Equal(t, MarkerSize, img.Bounds().Dy())

	_, _, _, centre := img.At(MarkerSize/2, MarkerSize/2).RGBA()
	assert.NotZero(t, centre, "arrow covers the centre")
	_, _, _, corner := img.At(0, 0).RGBA()
	assert.Zero(t, corner, "corners stay transparent")
}
