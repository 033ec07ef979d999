package resolver

import (
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Settings for the DNS server resolving the machine hostname when
// the UDP probe cannot find the local address.
type Settings struct {
	// Server is the DNS server to query. The zero value
	// uses the resolver configured on the system.
	Server  netip.AddrPort
	Timeout time.Duration
}

func (s *Settings) SetDefaults() {
	const defaultTimeout = 5 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
}

var (
	ErrServerPortZero    = errors.New("DNS server port is zero")
	ErrTimeoutOutOfRange = errors.New("timeout is out of range")
)

func (s Settings) Validate() (err error) {
	if s.Server.IsValid() && s.Server.Port() == 0 {
		return fmt.Errorf("%w: %s", ErrServerPortZero, s.Server)
	}

	const minTimeout, maxTimeout = 10 * time.Millisecond, time.Minute
	if s.Timeout < minTimeout || s.Timeout > maxTimeout {
		return fmt.Errorf("%w: %s must be between %s and %s",
			ErrTimeoutOutOfRange, s.Timeout, minTimeout, maxTimeout)
	}

	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("Hostname fallback resolver")
	if !s.Server.IsValid() {
		node.Appendf("DNS server: system")
		return node
	}
	node.Appendf("DNS server: %s", s.Server)
	node.Appendf("Query timeout: %s", s.Timeout)
	return node
}

func (s *Settings) Read(r *reader.Reader) (err error) {
	if server := r.String("RESOLVER_ADDRESS"); server != "" {
		s.Server, err = parseServer(server)
		if err != nil {
			return fmt.Errorf("environment variable RESOLVER_ADDRESS: %w", err)
		}
	}

	s.Timeout, err = r.Duration("RESOLVER_TIMEOUT")
	if err != nil {
		return err
	}

	return nil
}

var ErrServerNotValid = errors.New("DNS server address is not valid")

// parseServer parses an IP address with an optional port,
// which defaults to 53.
func parseServer(s string) (server netip.AddrPort, err error) {
	server, err = netip.ParseAddrPort(s)
	if err == nil {
		return server, nil
	}

	address, err := netip.ParseAddr(s)
	if err != nil {
		return server, fmt.Errorf("%w: %s", ErrServerNotValid, s)
	}
	const dnsPort = 53
	return netip.AddrPortFrom(address, dnsPort), nil
}
