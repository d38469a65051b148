// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"encoding/binary"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/bassosimone/safeconn"
)

// frameLengthPrefixSize is the number of bytes used to encode a frame's
// length prefix (RFC 5734 §4: 32-bit unsigned, network byte order).
const frameLengthPrefixSize = 4

// minFrameSize is the smallest legal prefix value: the prefix counts its
// own 4 bytes and a frame carries at least one payload byte, so the
// minimum is 5; anything below that indicates a framing error.
const minFrameSize = frameLengthPrefixSize + 1

var (
	errBadPrefix = errInvalidFrame("length prefix below minimum frame size or above the configured ceiling")
	errBadUTF8   = errInvalidFrame("frame payload is not valid UTF-8")
)

type errInvalidFrame string

func (e errInvalidFrame) Error() string { return string(e) }

// NewFramer returns a new [*Framer] reading and writing frames on conn.
//
// The cfg argument contains the common configuration for eppx operations;
// MaxFrameSize bounds [Framer.ReadFrame].
//
// The logger argument is the [SLogger] to use for structured logging of
// wire-level frame events.
func NewFramer(cfg *Config, conn io.ReadWriter, logger SLogger) *Framer {
	return &Framer{
		Conn:          conn,
		ErrClassifier: cfg.ErrClassifier,
		Logger:        logger,
		MaxFrameSize:  cfg.MaxFrameSize,
		TimeNow:       cfg.TimeNow,
	}
}

// Framer reads and writes RFC 5734 length-prefixed EPP frames over an
// [io.ReadWriter]. It does not interpret the XML payload.
//
// A single logical frame write must not be interleaved with another frame
// write on the same underlying connection; callers serialize access (see
// [Conn], which does this by construction).
//
// All fields are safe to modify after construction but before first use.
// Fields must not be mutated concurrently with calls to [Framer.ReadFrame]
// or [Framer.WriteFrame].
type Framer struct {
	// Conn is the underlying byte stream.
	Conn io.ReadWriter

	// ErrClassifier classifies errors for structured logging.
	ErrClassifier ErrClassifier

	// Logger is the [SLogger] to use for wire-level logging.
	Logger SLogger

	// MaxFrameSize bounds the prefix value accepted by ReadFrame,
	// including the 4-byte prefix itself.
	MaxFrameSize uint32

	// TimeNow is the function to get the current time.
	TimeNow func() time.Time
}

// WriteFrame writes payload as one EPP frame: a 4-byte big-endian length
// prefix (counting itself) followed by payload verbatim.
func (f *Framer) WriteFrame(ctx context.Context, payload []byte) error {
	t0 := f.TimeNow()
	deadline, _ := ctx.Deadline()

	prefix := make([]byte, frameLengthPrefixSize)
	binary.BigEndian.PutUint32(prefix, uint32(len(payload)+frameLengthPrefixSize))

	f.logWriteStart(t0, deadline, len(payload))
	_, werr := f.writeAll(append(prefix, payload...))
	f.logWriteDone(t0, deadline, len(payload), werr)

	if werr != nil {
		return newError("WriteFrame", KindTransportIO, werr)
	}
	return nil
}

func (f *Framer) writeAll(b []byte) (int, error) {
	return f.Conn.Write(b)
}

// ReadFrame reads one EPP frame and returns its XML payload (the prefix
// is consumed, not returned).
//
// Validates 5 <= prefix <= MaxFrameSize. A short read on either the
// prefix or the payload fails with [KindTransportEOF]. An oversized or
// undersized prefix fails with [KindProtocolFraming]. A payload that is
// not valid UTF-8 also fails with [KindProtocolFraming].
func (f *Framer) ReadFrame(ctx context.Context) ([]byte, error) {
	t0 := f.TimeNow()
	deadline, _ := ctx.Deadline()
	f.logReadStart(t0, deadline)

	var prefixBuf [frameLengthPrefixSize]byte
	if _, err := io.ReadFull(f.Conn, prefixBuf[:]); err != nil {
		kind := KindTransportIO
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			kind = KindTransportEOF
		}
		f.logReadDone(t0, deadline, 0, err)
		return nil, newError("ReadFrame", kind, err)
	}

	prefix := binary.BigEndian.Uint32(prefixBuf[:])
	if prefix < minFrameSize || (f.MaxFrameSize > 0 && prefix > f.MaxFrameSize) {
		err := &Error{Op: "ReadFrame", Kind: KindProtocolFraming, Err: errBadPrefix}
		f.logReadDone(t0, deadline, 0, err)
		return nil, err
	}

	payload := make([]byte, prefix-frameLengthPrefixSize)
	if _, err := io.ReadFull(f.Conn, payload); err != nil {
		kind := KindTransportIO
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			kind = KindTransportEOF
		}
		f.logReadDone(t0, deadline, 0, err)
		return nil, newError("ReadFrame", kind, err)
	}

	if !utf8.Valid(payload) {
		err := &Error{Op: "ReadFrame", Kind: KindProtocolFraming, Err: errBadUTF8}
		f.logReadDone(t0, deadline, len(payload), err)
		return nil, err
	}

	f.logReadDone(t0, deadline, len(payload), nil)
	return payload, nil
}

func (f *Framer) logWriteStart(t0 time.Time, deadline time.Time, n int) {
	f.Logger.Debug(
		"frameWriteStart",
		slog.Time("deadline", deadline),
		slog.Int("payloadBytes", n),
		slog.String("protocol", safeconn.Network(f.Conn)),
		slog.Time("t", t0),
	)
}

func (f *Framer) logWriteDone(t0 time.Time, deadline time.Time, n int, err error) {
	f.Logger.Debug(
		"frameWriteDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", f.ErrClassifier.Classify(err)),
		slog.Int("payloadBytes", n),
		slog.String("protocol", safeconn.Network(f.Conn)),
		slog.Time("t0", t0),
		slog.Time("t", f.TimeNow()),
	)
}

func (f *Framer) logReadStart(t0 time.Time, deadline time.Time) {
	f.Logger.Debug(
		"frameReadStart",
		slog.Time("deadline", deadline),
		slog.String("protocol", safeconn.Network(f.Conn)),
		slog.Time("t", t0),
	)
}

func (f *Framer) logReadDone(t0 time.Time, deadline time.Time, n int, err error) {
	f.Logger.Debug(
		"frameReadDone",
		slog.Time("deadline", deadline),
		slog.Any("err", err),
		slog.String("errClass", f.ErrClassifier.Classify(err)),
		slog.Int("payloadBytes", n),
		slog.String("protocol", safeconn.Network(f.Conn)),
		slog.Time("t0", t0),
		slog.Time("t", f.TimeNow()),
	)
}
