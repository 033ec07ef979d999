package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func Test_Caption_Lines(t *testing.T) {
	t.Parallel()

	caption := Caption{
		Address: "192.168.1.42",
		Payload: "http://192.168.1.42:8080",
	}

	lines := caption.Lines()

	expected := []string{"IP: 192.168.1.42", "http://192.168.1.42:8080"}
	assert.Equal(t, expected, lines)
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func Test_Draw(t *testing.T) {
	t.Parallel()

	const side = 100
	code := image.NewGray(image.Rect(0, 0, side, side))
	code.SetGray(0, 0, color.Gray{Y: 0})
	for x := 1; x < side; x++ {
		code.SetGray(x, 0, color.Gray{Y: 0xff})
	}

	caption := Caption{
		Address: "192.168.1.42",
		Payload: "http://192.168.1.42:8080",
	}

	img := Draw(code, caption, basicfont.Face7x13)

	assert.Equal(t, image.Rect(0, 0, side, side+captionHeight), img.Bounds())
	assert.True(t, isBlack(img.At(0, 0)))
	assert.False(t, isBlack(img.At(1, 0)))

	blackCaptionPixels := 0
	for y := side; y < side+captionHeight; y++ {
		for x := 0; x < side; x++ {
			if isBlack(img.At(x, y)) {
				blackCaptionPixels++
			}
		}
	}
	assert.Positive(t, blackCaptionPixels)
	// left margin stays blank
	for y := side; y < side+captionHeight; y++ {
		assert.False(t, isBlack(img.At(0, y)))
	}
}

func Test_Save(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "ip_qrcode.png")
		img := image.NewRGBA(image.Rect(0, 0, 3, 2))

		err := Save(path, img)
		require.NoError(t, err)

		file, err := os.Open(path)
		require.NoError(t, err)
		t.Cleanup(func() { _ = file.Close() })
		decoded, err := png.Decode(file)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "ip_qrcode.png")
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))

		err := Save(path, img)

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
