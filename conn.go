// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// Conn is an established, greeted EPP session (RFC 5730 §2.4, RFC 5734).
//
// This type owns the underlying TLS connection. The caller is responsible
// for calling Close() when done.
//
// A Conn serializes all command/response exchanges: EPP does not support
// pipelining, so [Transact] acquires an internal lock for the duration of
// one request/response round trip. Concurrent callers queue rather than
// race on the wire.
//
// Once any operation fails with a fatal [Kind] (see the package doc), the
// Conn is poisoned: every subsequent call fails immediately with
// [KindConnectionPoisoned] without touching the network. The caller must
// discard the Conn and establish a new one via [Dial].
//
// Construct via [*ConnFunc], typically at the end of a [Dial] pipeline.
type Conn struct {
	// conn is the owned TLS connection.
	conn TLSConn

	// framer reads and writes length-prefixed frames on conn.
	framer *Framer

	// greeting is the most recently received server greeting.
	greeting *Greeting

	// mu serializes Transact calls: EPP has no pipelining.
	mu sync.Mutex

	// poisoned is set once a fatal error has made conn unusable.
	poisoned atomic.Bool

	// ErrClassifier classifies errors for structured logging.
	ErrClassifier ErrClassifier

	// Logger is the SLogger to use.
	Logger SLogger

	// Timeout bounds each Transact or Hello round trip. Zero disables
	// the bound, relying solely on the caller's ctx.
	Timeout time.Duration

	// TimeNow is the function to get the current time.
	TimeNow func() time.Time
}

// Greeting returns the most recently received server greeting.
func (c *Conn) Greeting() *Greeting {
	return c.greeting
}

// Underlying returns the underlying TLSConn for logging purposes.
func (c *Conn) Underlying() TLSConn {
	return c.conn
}

// poison marks the connection unusable if err is a fatal [Kind]. Returns
// err unchanged, so callers can write `return c.poison(err)`.
func (c *Conn) poison(err error) error {
	if err == nil {
		return nil
	}
	var eppErr *Error
	if !errors.As(err, &eppErr) {
		return err
	}
	switch eppErr.Kind {
	case KindTransportEOF, KindTransportIO, KindTimeout, KindProtocolFraming, KindProtocolDesync:
		c.poisoned.Store(true)
	}
	return err
}

// checkPoisoned fails fast if a prior fatal error left the connection
// unusable, so a caller never issues I/O on a connection known to be dead.
func (c *Conn) checkPoisoned(op string) error {
	if c.poisoned.Load() {
		return &Error{Op: op, Kind: KindConnectionPoisoned}
	}
	return nil
}

// boundContext derives a context bounded by c.Timeout, if configured,
// never loosening a deadline the caller already set on ctx.
func (c *Conn) boundContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.Timeout)
}

// watchCancellation closes the underlying connection when ctx is done,
// interrupting any blocking read or write in progress. The underlying
// connection has no other way to observe a ctx that is not itself
// ctx-aware. The returned stop function must be called once the
// operation completes, successfully or not, to unregister the watcher.
func (c *Conn) watchCancellation(ctx context.Context) func() {
	stop := context.AfterFunc(ctx, func() {
		c.conn.Close()
	})
	return func() { stop() }
}

// classifyIOErr reclassifies err as [KindTimeout] if ctx ended before err
// occurred: forcibly closing the connection to interrupt blocked I/O (see
// [Conn.watchCancellation]) otherwise surfaces as a generic transport
// error that obscures the real cause.
func classifyIOErr(ctx context.Context, op string, err error) error {
	if err == nil || ctx.Err() == nil {
		return err
	}
	return &Error{Op: op, Kind: KindTimeout, Err: ctx.Err()}
}

// Hello sends <hello> and waits for a fresh <greeting>, replacing the
// cached greeting (RFC 5730 §2.9.2). Use this to refresh the advertised
// object and extension namespaces mid-session, e.g. after a long idle
// period.
func (c *Conn) Hello(ctx context.Context) (*Greeting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkPoisoned("Hello"); err != nil {
		return nil, err
	}

	ctx, cancel := c.boundContext(ctx)
	defer cancel()
	stop := c.watchCancellation(ctx)
	defer stop()

	if err := c.framer.WriteFrame(ctx, []byte(helloXML)); err != nil {
		return nil, c.poison(classifyIOErr(ctx, "Hello", err))
	}
	greeting, err := readGreeting(ctx, c.framer)
	if err != nil {
		return nil, c.poison(classifyIOErr(ctx, "Hello", err))
	}
	c.greeting = greeting
	return greeting, nil
}

// Close closes the underlying TLS connection. Safe to call multiple
// times and concurrently with an in-flight [Transact] or [Hello], which
// will then fail with a transport error.
func (c *Conn) Close() error {
	return c.conn.Close()
}
