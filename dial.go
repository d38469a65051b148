// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"crypto/tls"
	"net"
	"net/netip"
	"time"
)

// Dial connects to a registry's EPP-over-TCP-over-TLS endpoint (RFC
// 5734), completes the TLS handshake, and reads the initial greeting.
//
// addr is the endpoint to dial; it carries no hostname, so sniHost sets
// [tls.Config.ServerName] for certificate verification when tlsConfig
// does not already set one. Pass a zero tlsConfig to get the default
// verification behavior of [crypto/tls] with sniHost as server name.
//
// timeout bounds every subsequent [Transact] or [Conn.Hello] round trip
// on the returned [*Conn]; pass zero to fall back to cfg.Timeout, and a
// negative value has the same effect as zero. This is independent of the
// dial itself, which is bounded solely by ctx.
//
// The returned [*Conn] is closed automatically if ctx is done before
// [Dial] returns, via [CancelWatchFunc]; after that point the caller
// owns its lifetime and controls cancellation with [Conn.Close].
func Dial(ctx context.Context, cfg *Config, addr netip.AddrPort, sniHost string, tlsConfig *tls.Config, timeout time.Duration, logger SLogger) (*Conn, error) {
	if tlsConfig == nil {
		tlsConfig = &tls.Config{}
	}
	if tlsConfig.ServerName == "" {
		tlsConfig = tlsConfig.Clone()
		tlsConfig.ServerName = sniHost
	}

	connCfg := cfg
	if timeout > 0 {
		clone := *cfg
		clone.Timeout = timeout
		connCfg = &clone
	}

	epntOp := NewEndpointFunc(addr)
	connectOp := NewConnectFunc(cfg, logger)
	observeOp := NewObserveConnFunc(cfg, logger)
	var watched net.Conn
	autoCancelOp := FuncAdapter[net.Conn, net.Conn](func(ctx context.Context, conn net.Conn) (net.Conn, error) {
		wconn, err := NewCancelWatchFunc().Call(ctx, conn)
		watched = wconn
		return wconn, err
	})
	tlsHandshakeOp := NewTLSHandshakeFunc(cfg, tlsConfig, logger)
	wrapOp := NewConnFunc(connCfg, logger)

	dialPipe := Compose6(epntOp, connectOp, observeOp, autoCancelOp, tlsHandshakeOp, wrapOp)
	conn, err := dialPipe.Call(ctx, Unit{})
	if cw, ok := watched.(*cancelWatchedConn); ok {
		cw.stop() // the ctx watcher covers setup only
	}
	return conn, err
}
