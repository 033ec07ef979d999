package render

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

var ErrFontSizeInvalid = errors.New("font size is not valid")

// LoadFace loads the TrueType or OpenType font at path. The returned
// face must be closed once done with.
func LoadFace(path string, size float64) (face font.Face, err error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrFontSizeInvalid, size)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font file: %w", err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}

	const dpi = 72
	face, err = opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	return face, nil
}

// FaceOrDefault loads the font at path and falls back on a
// fixed 7x13 bitmap font if it cannot be loaded.
func FaceOrDefault(path string, size float64, infoer Infoer) font.Face {
	face, err := LoadFace(path, size)
	if err == nil {
		return face
	}
	infoer.Info("using default font: " + err.Error())
	return basicfont.Face7x13
}
