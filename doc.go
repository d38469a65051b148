// SPDX-License-Identifier: GPL-3.0-or-later

// Package eppx provides a client for the Extensible Provisioning Protocol
// (EPP) used by domain registrars to provision and manage domains, hosts,
// contacts, and registry messages against registry servers.
//
// # Core Abstraction
//
// The package is built around a single interface, borrowed from the
// composable-pipeline style used to establish the underlying connection:
//
//	type Func[A, B any] interface {
//		Call(ctx context.Context, input A) (B, error)
//	}
//
// [Dial] composes [ConnectFunc], [ObserveConnFunc], [CancelWatchFunc],
// [TLSHandshakeFunc], and [NewConnFunc] into a single pipeline that dials,
// observes, handshakes, and reads the unsolicited greeting, producing a
// [*Conn]. Once connected, [Transact] is the single generic transaction
// engine: every EPP command — domain, host, contact, message, session — is
// encoded, sent as one frame, and decoded as one frame through this one
// code path, parameterised by the command and extension schema types in
// the domain, host, contact, message, session, rgp, namestore,
// consolidate, and lowbalance subpackages.
//
// # Framing
//
// EPP-over-TCP (RFC 5734) frames every message as a 4-byte big-endian
// length prefix (counting itself) followed by UTF-8 XML. [Framer] reads
// and writes these frames; it never interprets the payload.
//
// # Connection Lifecycle
//
// [Dial] creates a connection and reads the server's greeting. [*Conn]
// owns the underlying TLS stream; the caller must call Close() when done,
// which closes the underlying connection. A connection serves one
// transaction at a time — EPP has no pipelining — and cancelling a
// [Transact] call between request write and response read poisons the
// connection: the caller must reconnect.
//
// # Observability
//
// All primitives support structured logging via [SLogger] (compatible
// with [log/slog]). By default, logging is disabled. Set the Logger field
// to a custom [*slog.Logger] to enable logging. Error classification is
// configurable via [ErrClassifier]; by default, [DefaultErrClassifier]
// maps errors to errno-style labels such as ETIMEDOUT.
//
// Primitives emit two kinds of structured log events:
//
//   - Span events (*Start/*Done pairs): record operation lifecycle
//     including timing and success/failure. Used for latency analysis and
//     error tracking.
//
//   - Wire observations (frameWrite/frameRead): record each EPP frame
//     exchanged on the wire with its payload size in bytes, for protocol
//     debugging; the payload itself is not logged.
//
// Every event carries t (timestamp). Connection-level events (connect,
// TLS handshake, close, per-I/O read and write) also carry protocol and
// the remoteAddr/localAddr known at that point; frame events carry
// protocol but no addresses; transaction events carry the clTRID.
// Completion events (*Done) additionally include t0 (start time), err,
// and errClass. I/O-level events (read, write, deadline changes, frame
// read/write) are emitted at [slog.LevelDebug]; all other events use
// [slog.LevelInfo].
//
// Use [NewSpanID] to generate a unique, time-ordered identifier (UUIDv7)
// for each operation, then attach it to the logger with
// [*slog.Logger.With]. All log entries from that operation will share the
// same spanID, enabling correlation across pipeline stages.
//
// # Timeout and Context Philosophy
//
// This package is context-transparent: operations never modify the
// context they receive. The caller controls timeouts externally via
// [context.WithTimeout], [context.WithDeadline], or
// [signal.NotifyContext]. When the context is done (timeout, cancel, or
// signal), operations fail and the pipeline is interrupted.
//
// Connection lifecycle requires [CancelWatchFunc] to bind the context
// lifecycle to the connection: when the context is done, the connection
// is closed immediately, causing any in-progress I/O to fail. [Dial]
// always includes it for the duration of the dial and unregisters it
// before returning.
//
// [Transact] and [Conn.Hello] apply the same binding to an established
// connection: each call derives a ctx bounded by [Conn.Timeout] (set from
// [Config.Timeout] or [Dial]'s timeout argument) and registers a
// [context.AfterFunc] that closes the underlying connection the moment
// that ctx ends, whether by caller cancellation or by exceeding the
// timeout. Either way the blocked read or write unblocks with an error,
// which is reported as [KindTimeout] and poisons the connection; the
// caller must reconnect.
//
// # Error Handling
//
// Every fallible EPP operation returns an [*Error] carrying a [Kind] from
// a fixed taxonomy; the one exception is a failed TCP connect inside
// [Dial], which returns the dialer's error as is. Transport-level
// failures (KindTransportEOF, KindTransportIO, KindTimeout,
// KindProtocolFraming, KindProtocolDesync) poison the connection;
// KindTLS fails the connect attempt, so no connection is returned;
// KindXMLDecode and
// KindCommandFailed are surfaced to the caller with the connection still
// usable; KindConnectionPoisoned rejects any further operation on a
// poisoned connection. The engine never retries.
//
// # Design Boundaries
//
// This package intentionally provides only the transport, transaction
// engine, and schema catalog for a single EPP session. The following are
// out of scope and should be implemented by higher-level packages:
//
//   - Connection pooling across concurrent callers (a [*Conn] is
//     single-owner)
//   - Automatic relogin
//   - Persistence of transactions
//   - Provisioning-workflow abstractions above single EPP commands
//   - On-disk credential/TOML configuration loading
//   - Process-wide logging setup
//
// These concerns introduce multiple success/failure modes, or belong to
// the calling application, and would compromise the compositional
// simplicity of this package.
package eppx
