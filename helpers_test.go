// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"bytes"
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/bassosimone/netstub"
	"github.com/bassosimone/slogstub"
	"github.com/bassosimone/tlsstub"
)

// newCapturingLogger returns a logger that captures all log records into the
// returned slice. The caller can inspect the slice after exercising the code
// under test to verify which events were emitted.
func newCapturingLogger() (*slog.Logger, *[]slog.Record) {
	var records []slog.Record
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			records = append(records, record)
			return nil
		},
	}
	return slog.New(handler), &records
}

// newMockTLSEngine returns a [*tlsstub.FuncTLSEngine] that wraps the given
// [TLSConn]. The engine's ClientFunc returns the conn, NameFunc returns
// "mock", and ParrotFunc returns "".
func newMockTLSEngine(conn TLSConn) *tlsstub.FuncTLSEngine[TLSConn] {
	return &tlsstub.FuncTLSEngine[TLSConn]{
		ClientFunc: func(c net.Conn, config *tls.Config) TLSConn {
			return conn
		},
		NameFunc: func() string {
			return "mock"
		},
		ParrotFunc: func() string {
			return ""
		},
	}
}

// newMinimalConn returns a [*netstub.FuncConn] with only LocalAddrFunc and
// RemoteAddrFunc set. This is the minimum needed for code that calls
// [safeconn.LocalAddr], [safeconn.RemoteAddr], and [safeconn.Network]
// during construction.
func newMinimalConn() *netstub.FuncConn {
	return &netstub.FuncConn{
		LocalAddrFunc:  func() net.Addr { return &net.TCPAddr{} },
		RemoteAddrFunc: func() net.Addr { return &net.TCPAddr{} },
	}
}

// bufConn is an in-memory [io.ReadWriter] used to exercise [Framer] and
// [Conn] without a real socket. Reads are served from rbuf; writes are
// appended to wbuf.
type bufConn struct {
	rbuf *bytes.Buffer
	wbuf *bytes.Buffer
}

func newBufConn(initial []byte) *bufConn {
	return &bufConn{
		rbuf: bytes.NewBuffer(initial),
		wbuf: &bytes.Buffer{},
	}
}

func (c *bufConn) Read(p []byte) (int, error) {
	return c.rbuf.Read(p)
}

func (c *bufConn) Write(p []byte) (int, error) {
	return c.wbuf.Write(p)
}

// fakeTLSConn adapts a [*bufConn] into a [TLSConn] for exercising [Conn]
// and [*ConnFunc] without a real TLS handshake: HandshakeContext always
// succeeds, and ConnectionState returns the zero value.
type fakeTLSConn struct {
	*bufConn
	closed bool
}

func newFakeTLSConn(initial []byte) *fakeTLSConn {
	return &fakeTLSConn{bufConn: newBufConn(initial)}
}

func (c *fakeTLSConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeTLSConn) LocalAddr() net.Addr                { return &net.TCPAddr{} }
func (c *fakeTLSConn) RemoteAddr() net.Addr               { return &net.TCPAddr{} }
func (c *fakeTLSConn) SetDeadline(t time.Time) error      { return nil }
func (c *fakeTLSConn) SetReadDeadline(t time.Time) error  { return nil }
func (c *fakeTLSConn) SetWriteDeadline(t time.Time) error { return nil }

func (c *fakeTLSConn) ConnectionState() tls.ConnectionState { return tls.ConnectionState{} }

func (c *fakeTLSConn) HandshakeContext(ctx context.Context) error { return nil }

// blockingTLSConn is a [TLSConn] whose Read blocks until Close is called,
// simulating a registry that accepts a request but never answers. Used to
// exercise ctx-driven cancellation of an in-progress [Conn.Hello] or
// [Transact] call.
type blockingTLSConn struct {
	*fakeTLSConn
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newBlockingTLSConn() *blockingTLSConn {
	return &blockingTLSConn{
		fakeTLSConn: newFakeTLSConn(nil),
		closeCh:     make(chan struct{}),
	}
}

func (c *blockingTLSConn) Read(p []byte) (int, error) {
	<-c.closeCh
	return 0, net.ErrClosed
}

func (c *blockingTLSConn) Close() error {
	c.closeOnce.Do(func() { close(c.closeCh) })
	return c.fakeTLSConn.Close()
}
