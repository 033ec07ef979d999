// Package localip finds the IP address the machine uses to reach
// other hosts.
package localip

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Dialer,IPLookuper,Warner

type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

type IPLookuper interface {
	LookupIP(ctx context.Context, network, host string) (ips []net.IP, err error)
}

type Warner interface {
	Warn(s string)
}

type Fetcher struct {
	probeAddress string
	dialer       Dialer
	resolver     IPLookuper
	hostname     func() (name string, err error)
	warner       Warner
}

// New returns a fetcher dialing probeAddress over UDP to find the
// local address, and resolving the machine hostname with resolver
// should that fail. No packet is sent to probeAddress.
func New(probeAddress string, dialer Dialer, resolver IPLookuper,
	warner Warner) *Fetcher {
	return &Fetcher{
		probeAddress: probeAddress,
		dialer:       dialer,
		resolver:     resolver,
		hostname:     os.Hostname,
		warner:       warner,
	}
}

var ErrAddressNotFound = errors.New("local address not found")

// Fetch returns the local address, trying the UDP probe first and
// the hostname resolution second.
func (f *Fetcher) Fetch(ctx context.Context) (address netip.Addr, err error) {
	address, probeErr := f.probe(ctx)
	if probeErr == nil {
		return address, nil
	}
	f.warner.Warn("getting local address using UDP probe: " + probeErr.Error())

	address, hostnameErr := f.resolveHostname(ctx)
	if hostnameErr == nil {
		return address, nil
	}

	return netip.Addr{}, fmt.Errorf("%w: %w; %w", ErrAddressNotFound, probeErr, hostnameErr)
}

var ErrLocalAddressNotUDP = errors.New("local address is not an UDP address")

func (f *Fetcher) probe(ctx context.Context) (address netip.Addr, err error) {
	const network = "udp4"
	connection, err := f.dialer.DialContext(ctx, network, f.probeAddress)
	if err != nil {
		return address, fmt.Errorf("dialing %s: %w", f.probeAddress, err)
	}
	defer connection.Close()

	localAddress, ok := connection.LocalAddr().(*net.UDPAddr)
	if !ok {
		return address, fmt.Errorf("%w: %T", ErrLocalAddressNotUDP, connection.LocalAddr())
	}

	address, ok = netip.AddrFromSlice(localAddress.IP)
	if !ok {
		return address, fmt.Errorf("%w: %s", ErrLocalAddressNotUDP, localAddress)
	}
	return address.Unmap(), nil
}

var ErrHostnameNoIPv4 = errors.New("hostname resolves to no IPv4 address")

func (f *Fetcher) resolveHostname(ctx context.Context) (address netip.Addr, err error) {
	hostname, err := f.hostname()
	if err != nil {
		return address, fmt.Errorf("getting hostname: %w", err)
	}

	const network = "ip4"
	ips, err := f.resolver.LookupIP(ctx, network, hostname)
	if err != nil {
		return address, fmt.Errorf("resolving hostname %s: %w", hostname, err)
	}

	for _, ip := range ips {
		address, ok := netip.AddrFromSlice(ip)
		if ok && address.Unmap().Is4() {
			return address.Unmap(), nil
		}
	}

	return address, fmt.Errorf("%w: %s", ErrHostnameNoIPv4, hostname)
}
