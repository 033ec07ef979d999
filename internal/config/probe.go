package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Probe settings are for the UDP address dialed to find
// the local address. It does not need to be reachable.
type Probe struct {
	Address string
}

func (p *Probe) setDefaults() {
	p.Address = gosettings.DefaultComparable(p.Address, "8.8.8.8:80")
}

var (
	ErrProbeHostEmpty = errors.New("probe host is empty")
	ErrProbePortEmpty = errors.New("probe port is empty")
)

func (p Probe) Validate() (err error) {
	host, port, err := net.SplitHostPort(p.Address)
	if err != nil {
		return fmt.Errorf("splitting host and port from address: %w", err)
	}

	switch {
	case host == "":
		return fmt.Errorf("%w: in %s", ErrProbeHostEmpty, p.Address)
	case port == "":
		return fmt.Errorf("%w: in %s", ErrProbePortEmpty, p.Address)
	}

	return nil
}

func (p Probe) String() string {
	return p.toLinesNode().String()
}

func (p Probe) toLinesNode() *gotree.Node {
	node := gotree.New("Local address probe")
	node.Appendf("UDP address: %s", p.Address)
	return node
}

func (p *Probe) read(reader *reader.Reader) {
	p.Address = reader.String("PROBE_ADDRESS")
}
