// Package render draws a QR code and its caption onto a PNG image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	captionHeight = 60
	captionMargin = 10
	// offsets of the top of each caption line, from the bottom of the code.
	firstLineOffset  = 10
	secondLineOffset = 30
)

type Caption struct {
	Address string
	Payload string
}

// Lines returns the text lines drawn under the QR code.
func (c Caption) Lines() []string {
	return []string{"IP: " + c.Address, c.Payload}
}

// Draw returns a new image with code at its top left and the caption
// in a white band below it.
func Draw(code image.Image, caption Caption, face font.Face) *image.RGBA {
	codeBounds := code.Bounds()
	width, height := codeBounds.Dx(), codeBounds.Dy()

	canvas := image.NewRGBA(image.Rect(0, 0, width, height+captionHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, width, height), code, codeBounds.Min, draw.Src)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	offsets := []int{firstLineOffset, secondLineOffset}
	for i, line := range caption.Lines() {
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(captionMargin),
			Y: fixed.I(height+offsets[i]) + ascent,
		}
		drawer.DrawString(line)
	}

	return canvas
}

// Save encodes img as PNG into a file at path, creating or
// truncating it.
func Save(path string, img image.Image) (err error) {
	const perm = 0o644
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}

	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("encoding PNG image: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("closing image file: %w", err)
	}

	return nil
}
