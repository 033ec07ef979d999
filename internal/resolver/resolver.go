// Package resolver builds the resolver used to look up the
// machine hostname.
package resolver

import (
	"context"
	"fmt"
	"net"
)

// New returns the system resolver if no DNS server is set, or a
// resolver sending its queries to the server otherwise. Queries use
// the network asked by the Go resolver, so truncated UDP answers
// are retried over TCP.
func New(settings Settings) (resolver *net.Resolver, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	if !settings.Server.IsValid() {
		return net.DefaultResolver, nil
	}

	dialer := &net.Dialer{Timeout: settings.Timeout}
	server := settings.Server.String()
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, server)
		},
	}, nil
}
