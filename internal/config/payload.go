package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Payload settings are the text surrounding the
// address in the QR code.
type Payload struct {
	Prefix *string
	Suffix *string
}

func (p *Payload) setDefaults() {
	p.Prefix = gosettings.DefaultPointer(p.Prefix, "")
	p.Suffix = gosettings.DefaultPointer(p.Suffix, "")
}

func (p Payload) Validate() (err error) {
	return nil
}

func (p Payload) String() string {
	return p.toLinesNode().String()
}

func (p Payload) toLinesNode() *gotree.Node {
	if *p.Prefix == "" && *p.Suffix == "" {
		return gotree.New("Payload: address only")
	}
	node := gotree.New("Payload")
	node.Appendf("Prefix: %q", *p.Prefix)
	node.Appendf("Suffix: %q", *p.Suffix)
	return node
}

func (p *Payload) read(reader *reader.Reader) {
	p.Prefix = reader.Get("QR_PREFIX")
	p.Suffix = reader.Get("QR_SUFFIX")
}
