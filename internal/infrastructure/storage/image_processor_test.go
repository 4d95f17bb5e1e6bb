package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 7 {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateCover(t *testing.T) {
	p := &ImageProcessor{MaxSize: 1 << 20, MinEdge: 64}

	assert.NoError(t, p.ValidateCover(encodePNG(t, 64, 64)))
	assert.Error(t, p.ValidateCover(encodePNG(t, 64, 32)), "not square")
	assert.Error(t, p.ValidateCover(encodePNG(t, 32, 32)), "too small")
	assert.Error(t, p.ValidateCover([]byte("not an image")))

	lenient := NewImageProcessor(0, 0)
	assert.NoError(t, lenient.ValidateCover(encodePNG(t, 64, 32)))
}

func TestThumbnail(t *testing.T) {
	p := NewImageProcessor(0, 0)

	out, err := p.Thumbnail(encodePNG(t, 600, 600))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, ThumbnailSize, img.Bounds().Dx())
	assert.Equal(t, ThumbnailSize, img.Bounds().Dy())
}
