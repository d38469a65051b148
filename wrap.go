// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"time"
)

// NewConnFunc returns a new [*ConnFunc].
//
// The cfg argument contains the common configuration for eppx operations.
//
// The logger argument is the [SLogger] to use for structured logging.
func NewConnFunc(cfg *Config, logger SLogger) *ConnFunc {
	return &ConnFunc{
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		MaxFrameSize:  cfg.MaxFrameSize,
		Timeout:       cfg.Timeout,
		TimeNow:       cfg.TimeNow,
	}
}

// ConnFunc wraps a [TLSConn] into a [*Conn], reading the server's
// unsolicited greeting before returning (RFC 5730 §2.4: the server sends
// a greeting immediately upon successful TLS connection, with no
// preceding command from the client).
//
// This is a [Func] that can be composed into pipelines; see [Dial].
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Call].
type ConnFunc struct {
	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConnFunc] from [Config.ErrClassifier].
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use (configurable for testing or custom logging).
	//
	// Set by [NewConnFunc] to the user-provided logger.
	Logger SLogger

	// MaxFrameSize bounds frames read on the new connection.
	//
	// Set by [NewConnFunc] from [Config.MaxFrameSize].
	MaxFrameSize uint32

	// Timeout bounds each [Transact] or [Conn.Hello] round trip on the
	// new connection.
	//
	// Set by [NewConnFunc] from [Config.Timeout].
	Timeout time.Duration

	// TimeNow is the function to get the current time (configurable for testing).
	//
	// Set by [NewConnFunc] from [Config.TimeNow].
	TimeNow func() time.Time
}

var _ Func[TLSConn, *Conn] = &ConnFunc{}

// Call wraps conn into a [*Conn] and reads the initial greeting. On
// failure, conn is closed: [Func] implementations that receive a
// closeable resource own it until they hand it off successfully.
func (op *ConnFunc) Call(ctx context.Context, conn TLSConn) (*Conn, error) {
	framer := &Framer{
		Conn:          conn,
		ErrClassifier: op.ErrClassifier,
		Logger:        op.Logger,
		MaxFrameSize:  op.MaxFrameSize,
		TimeNow:       op.TimeNow,
	}

	greeting, err := readGreeting(ctx, framer)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Conn{
		conn:          conn,
		framer:        framer,
		greeting:      greeting,
		ErrClassifier: op.ErrClassifier,
		Logger:        op.Logger,
		Timeout:       op.Timeout,
		TimeNow:       op.TimeNow,
	}, nil
}
