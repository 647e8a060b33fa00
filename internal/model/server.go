package model

import (
	"context"
	"net"
)

// SecurityLayer produces a listener, plain or TLS-wrapped.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running transport server with graceful shutdown.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
