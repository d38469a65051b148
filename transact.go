// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"encoding/xml"
	"log/slog"
	"time"
)

// Request is a generic EPP command: a mapping-specific command body C
// (which knows its own base-protocol verb element and object namespace,
// see the domain/host/contact/message/session/rgp subpackages), an
// optional extension body E, and the client transaction identifier.
//
// Pass [NoExtension] for E when the command carries no extension.
type Request[C any, E any] struct {
	// Command is the command body.
	Command C

	// Extension is the extension body. Ignored when E is [NoExtension].
	Extension E

	// ClTRID is the client transaction identifier echoed back by the
	// server in the response's TrID.
	ClTRID string
}

// Response is a generic EPP response: the one or more result codes the
// protocol mandates, an optional poll-queue summary, the mapping-specific
// response data decoded into C, an optional extension decoded into E, and
// the transaction identifiers.
type Response[C any, E any] struct {
	// Results holds every <result> the server returned. Most responses
	// carry exactly one; a multi-result response (RFC 5730 §2.6) occurs
	// only for batched object operations that are out of scope for this
	// client. Whether the overall response is a success is judged from
	// Results[0]; see [Response.Success].
	Results []Result

	// MsgQueue is set when the response carries a poll-queue summary.
	MsgQueue *MsgQueue

	// ResData is the decoded mapping-specific response data, or nil if
	// the response carried no resData element.
	ResData *C

	// Extension is the decoded extension data, or nil if the response
	// carried no extension element, or if E is [NoExtension].
	Extension *E

	// RawExtension preserves the full <extension> contents verbatim,
	// including any sibling extensions the server sent that E did not
	// account for (§7: unknown extension content is retained rather
	// than dropped). Empty if the response carried no extension.
	RawExtension RawXML

	// TrID carries the client and server transaction identifiers.
	TrID TrID
}

// Success reports whether the response is success-class, judged from the
// first result code (RFC 5730 §3).
func (r *Response[C, E]) Success() bool {
	return len(r.Results) > 0 && r.Results[0].Success()
}

// Transact sends req on conn and decodes the matching response.
//
// This is the single code path used for every EPP command; mapping
// packages provide only the XML-tagged C and E types, not per-command
// dispatch logic.
//
// Transact fails with [KindCommandFailed] when the response's first
// result is not success-class; the returned error's Code and Reason
// fields carry the result code and message, and the decoded [*Response]
// is still returned so the caller can inspect extended error values.
//
// Transact fails with [KindProtocolDesync] when the response's clTRID
// does not echo back req.ClTRID, since that indicates the connection's
// request/response stream has desynchronized; the connection is poisoned.
func Transact[C any, E any](ctx context.Context, conn *Conn, req *Request[C, E]) (*Response[C, E], error) {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	if err := conn.checkPoisoned("Transact"); err != nil {
		return nil, err
	}

	ctx, cancel := conn.boundContext(ctx)
	defer cancel()
	stop := conn.watchCancellation(ctx)
	defer stop()

	_, hasExtension := any(req.Extension).(NoExtension)
	hasExtension = !hasExtension

	payload, err := marshalEnvelope(req.Command, req.Extension, hasExtension, req.ClTRID)
	if err != nil {
		return nil, &Error{Op: "Transact", Kind: KindXMLDecode, Err: err}
	}

	t0 := conn.TimeNow()
	conn.logTransactStart(t0, req.ClTRID)

	if err := conn.framer.WriteFrame(ctx, payload); err != nil {
		err = classifyIOErr(ctx, "Transact", err)
		conn.logTransactDone(t0, req.ClTRID, err)
		return nil, conn.poison(err)
	}

	respPayload, err := conn.framer.ReadFrame(ctx)
	if err != nil {
		err = classifyIOErr(ctx, "Transact", err)
		conn.logTransactDone(t0, req.ClTRID, err)
		return nil, conn.poison(err)
	}

	resp, err := decodeResponse[C, E](respPayload)
	if err != nil {
		conn.logTransactDone(t0, req.ClTRID, err)
		return nil, conn.poison(err)
	}

	if resp.TrID.ClTRID != req.ClTRID {
		err := &Error{Op: "Transact", Kind: KindProtocolDesync, Err: errTrIDMismatch}
		conn.logTransactDone(t0, req.ClTRID, err)
		return nil, conn.poison(err)
	}

	conn.logTransactDone(t0, req.ClTRID, nil)

	if !resp.Success() {
		result := resp.Results[0]
		return resp, &Error{Op: "Transact", Kind: KindCommandFailed, Code: result.Code, Reason: result.Message}
	}

	return resp, nil
}

var errTrIDMismatch = errInvalidFrame("response clTRID does not match request clTRID")

func decodeResponse[C any, E any](payload []byte) (*Response[C, E], error) {
	var env rawEnvelope
	if err := xml.Unmarshal(payload, &env); err != nil {
		return nil, &Error{Op: "Transact", Kind: KindXMLDecode, Err: err}
	}
	if env.Response == nil {
		return nil, &Error{Op: "Transact", Kind: KindProtocolDesync, Err: errNotAResponse}
	}

	resp := &Response[C, E]{
		Results:      env.Response.Results,
		MsgQueue:     env.Response.MsgQueue,
		RawExtension: env.Response.Extension,
		TrID:         env.Response.TrID,
	}

	if len(env.Response.ResData) > 0 {
		var c C
		if err := xml.Unmarshal(env.Response.ResData, &c); err != nil {
			return nil, &Error{Op: "Transact", Kind: KindXMLDecode, Err: err}
		}
		resp.ResData = &c
	}

	if len(env.Response.Extension) > 0 {
		var e E
		if _, isNone := any(e).(NoExtension); !isNone {
			if err := xml.Unmarshal(env.Response.Extension, &e); err != nil {
				return nil, &Error{Op: "Transact", Kind: KindXMLDecode, Err: err}
			}
			resp.Extension = &e
		}
	}

	return resp, nil
}

var errNotAResponse = errInvalidFrame("expected a <response> document")

func (c *Conn) logTransactStart(t0 time.Time, clTRID string) {
	c.Logger.Info(
		"transactStart",
		slog.String("clTRID", clTRID),
		slog.Time("t", t0),
	)
}

func (c *Conn) logTransactDone(t0 time.Time, clTRID string, err error) {
	c.Logger.Info(
		"transactDone",
		slog.String("clTRID", clTRID),
		slog.Any("err", err),
		slog.String("errClass", c.ErrClassifier.Classify(err)),
		slog.Time("t0", t0),
		slog.Time("t", c.TimeNow()),
	)
}
