// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"net"
	"time"
)

// DefaultMaxFrameSize is the default ceiling on a single EPP frame,
// including its 4-byte length prefix. Registries do not send frames
// anywhere near this large; it exists to bound memory use when a peer
// sends a corrupt or hostile length prefix.
const DefaultMaxFrameSize = 1 << 20 // 1 MiB

// DefaultTimeout is the default ceiling on a single [Transact] or [Conn.Hello]
// round trip, covering both the request write and the response read. A
// registry that accepts the request but never answers must not hang the
// caller forever.
const DefaultTimeout = 30 * time.Second

// Config holds common configuration for eppx operations.
//
// Pass this to constructor functions to pre-wire dependencies.
// All fields have sensible defaults set by [NewConfig].
type Config struct {
	// Dialer is used by [*ConnectFunc].
	//
	// Set by [NewConfig] to [*net.Dialer].
	Dialer Dialer

	// ErrClassifier classifies errors for structured logging.
	//
	// Set by [NewConfig] to [DefaultErrClassifier].
	ErrClassifier ErrClassifier

	// MaxFrameSize bounds the size of a single frame read from the wire,
	// including the 4-byte length prefix. Used by [Framer.ReadFrame].
	//
	// Set by [NewConfig] to [DefaultMaxFrameSize].
	MaxFrameSize uint32

	// Timeout bounds a single [Transact] or [Conn.Hello] round trip.
	// Zero disables the connection-wide bound, relying solely on the
	// caller's ctx. [Dial]'s timeout argument overrides this per
	// connection.
	//
	// Set by [NewConfig] to [DefaultTimeout].
	Timeout time.Duration

	// TimeNow returns the current time.
	//
	// Set by [NewConfig] to [time.Now].
	TimeNow func() time.Time
}

// NewConfig creates a [*Config] with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Dialer:        &net.Dialer{},
		ErrClassifier: DefaultErrClassifier,
		MaxFrameSize:  DefaultMaxFrameSize,
		Timeout:       DefaultTimeout,
		TimeNow:       time.Now,
	}
}
