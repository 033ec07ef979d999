package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Image struct {
	Output   string
	Scale    uint
	FontPath string
	FontSize uint
	Terminal *bool
}

func (i *Image) setDefaults() {
	i.Output = gosettings.DefaultComparable(i.Output, "ip_qrcode.png")
	const defaultScale = 10
	i.Scale = gosettings.DefaultComparable(i.Scale, defaultScale)
	i.FontPath = gosettings.DefaultComparable(i.FontPath, "arial.ttf")
	const defaultFontSize = 16
	i.FontSize = gosettings.DefaultComparable(i.FontSize, defaultFontSize)
	i.Terminal = gosettings.DefaultPointer(i.Terminal, false)
}

var (
	ErrOutputNotPNG = errors.New("output file extension is not .png")
	ErrScaleTooHigh = errors.New("scale is too high")
)

func (i Image) Validate() (err error) {
	if ext := filepath.Ext(i.Output); !strings.EqualFold(ext, ".png") {
		return fmt.Errorf("%w: %s", ErrOutputNotPNG, i.Output)
	}

	const maxScale = 100
	if i.Scale > maxScale {
		return fmt.Errorf("%w: %d must be at most %d", ErrScaleTooHigh, i.Scale, maxScale)
	}

	return nil
}

func (i Image) String() string {
	return i.toLinesNode().String()
}

func (i Image) toLinesNode() *gotree.Node {
	node := gotree.New("Image")
	node.Appendf("Output file: %s", i.Output)
	node.Appendf("Module size: %dpx", i.Scale)
	node.Appendf("Font: %s (%dpt)", i.FontPath, i.FontSize)
	node.Appendf("Terminal preview: %s", gosettings.BoolToYesNo(i.Terminal))
	return node
}

func (i *Image) read(reader *reader.Reader) (err error) {
	i.Output = reader.String("QR_OUTPUT")

	i.Scale, err = reader.Uint("QR_SCALE")
	if err != nil {
		return err
	}

	i.FontPath = reader.String("FONT_PATH")

	i.FontSize, err = reader.Uint("FONT_SIZE")
	if err != nil {
		return err
	}

	i.Terminal, err = reader.BoolPtr("QR_TERMINAL")
	if err != nil {
		return err
	}

	return nil
}
