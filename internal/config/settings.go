package config

import (
	"fmt"

	"github.com/qdm12/deskutils/internal/resolver"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type validator interface {
	Validate() (err error)
}

func validateAll(toValidate map[string]validator) (err error) {
	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}
	return nil
}

// IPQR holds the settings of the IP to QR code program.
type IPQR struct {
	Payload  Payload
	Probe    Probe
	Resolver resolver.Settings
	Image    Image
	Viewer   Viewer
	Logger   Logger
}

func (i *IPQR) SetDefaults() {
	i.Payload.setDefaults()
	i.Probe.setDefaults()
	i.Resolver.SetDefaults()
	i.Image.setDefaults()
	i.Viewer.setDefaults()
	i.Logger.setDefaults()
}

func (i IPQR) Validate() (err error) {
	return validateAll(map[string]validator{
		"payload":  &i.Payload,
		"probe":    &i.Probe,
		"resolver": &i.Resolver,
		"image":    &i.Image,
		"viewer":   &i.Viewer,
		"logger":   &i.Logger,
	})
}

func (i IPQR) String() string {
	node := gotree.New("Settings summary:")
	node.AppendNode(i.Payload.toLinesNode())
	node.AppendNode(i.Probe.toLinesNode())
	node.AppendNode(i.Resolver.ToLinesNode())
	node.AppendNode(i.Image.toLinesNode())
	node.AppendNode(i.Viewer.toLinesNode())
	node.AppendNode(i.Logger.toLinesNode())
	return node.String()
}

func (i *IPQR) Read(reader *reader.Reader) (err error) {
	i.Payload.read(reader)
	i.Probe.read(reader)

	err = i.Resolver.Read(reader)
	if err != nil {
		return fmt.Errorf("reading resolver settings: %w", err)
	}

	err = i.Image.read(reader)
	if err != nil {
		return fmt.Errorf("reading image settings: %w", err)
	}

	err = i.Viewer.read(reader)
	if err != nil {
		return fmt.Errorf("reading viewer settings: %w", err)
	}

	err = i.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}

// URLCleaner holds the settings of the URL cleaner program.
type URLCleaner struct {
	Clipboard Clipboard
	Logger    Logger
}

func (u *URLCleaner) SetDefaults() {
	u.Clipboard.setDefaults()
	u.Logger.setDefaults()
}

func (u URLCleaner) Validate() (err error) {
	return validateAll(map[string]validator{
		"clipboard": &u.Clipboard,
		"logger":    &u.Logger,
	})
}

func (u URLCleaner) String() string {
	node := gotree.New("Settings summary:")
	node.AppendNode(u.Clipboard.toLinesNode())
	node.AppendNode(u.Logger.toLinesNode())
	return node.String()
}

func (u *URLCleaner) Read(reader *reader.Reader) (err error) {
	u.Clipboard.read(reader)

	err = u.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	return nil
}
