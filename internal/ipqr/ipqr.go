// Package ipqr generates a PNG image of a QR code encoding the
// local address of the machine.
package ipqr

import (
	"context"
	"fmt"
	"io"
	"net/netip"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/qdm12/deskutils/internal/qrcode"
	"github.com/qdm12/deskutils/internal/render"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Fetcher,Opener,Logger

type Fetcher interface {
	Fetch(ctx context.Context) (address netip.Addr, err error)
}

type Opener interface {
	Open(ctx context.Context, path string) (err error)
}

type Logger interface {
	Info(s string)
}

type Settings struct {
	Prefix   string
	Suffix   string
	Output   string
	Scale    int
	FontPath string
	FontSize float64
	Terminal bool
}

type Generator struct {
	settings Settings
	fetcher  Fetcher
	opener   Opener
	stdout   io.Writer
	logger   Logger
}

func New(settings Settings, fetcher Fetcher, opener Opener,
	stdout io.Writer, logger Logger) *Generator {
	return &Generator{
		settings: settings,
		fetcher:  fetcher,
		opener:   opener,
		stdout:   stdout,
		logger:   logger,
	}
}

// Run finds the local address, saves its QR code image to the output
// path and tries to open it. Failing to open the image is not an error.
func (g *Generator) Run(ctx context.Context) (err error) {
	ip, err := g.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("getting local address: %w", err)
	}
	address := ip.String()
	fmt.Fprintln(g.stdout, "Your IP address is: "+address)

	payload := qrcode.Compose(g.settings.Prefix, address, g.settings.Suffix)
	fmt.Fprintln(g.stdout, "Creating QR code for: "+payload)

	code, err := qrcode.Encode(payload, g.settings.Scale)
	if err != nil {
		return fmt.Errorf("encoding QR code: %w", err)
	}

	if g.settings.Terminal {
		err = qrcode.WriteTerminal(g.stdout, payload)
		if err != nil {
			return err
		}
	}

	face := render.FaceOrDefault(g.settings.FontPath, g.settings.FontSize, g.logger)
	defer face.Close()

	caption := render.Caption{Address: address, Payload: payload}
	img := render.Draw(code.Image(), caption, face)

	err = render.Save(g.settings.Output, img)
	if err != nil {
		return fmt.Errorf("saving QR code image: %w", err)
	}
	color.New(color.FgGreen).Fprintln(g.stdout,
		"QR code generated and saved as "+g.settings.Output)

	err = g.opener.Open(ctx, g.settings.Output)
	if err != nil {
		g.logger.Info("unable to display image automatically: " + err.Error())
		path, absErr := filepath.Abs(g.settings.Output)
		if absErr != nil {
			path = g.settings.Output
		}
		g.logger.Info("please open the saved image at: " + path)
	}

	return nil
}
