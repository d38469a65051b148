// SPDX-License-Identifier: GPL-3.0-or-later

// Package message implements EPP's message-queue commands: poll request
// and poll acknowledge (RFC 5730 §2.9.2.3).
//
// A poll request's resData, if any, is mapping-specific (e.g. a pending
// domain transfer notification, RFC 5731 §3.2.5; or a low-balance
// notification, see the lowbalance package). Callers pick the C type
// parameter of [eppx.Request]/[eppx.Response] to match what they expect
// to find in the queue; an empty resData (no notification payload, just
// the queue summary in [eppx.Response.MsgQueue]) decodes fine regardless
// of C since [eppx.Response.ResData] is left nil.
package message

import "encoding/xml"

// PollOp selects between polling for the next message and acknowledging
// one already retrieved.
type PollOp string

const (
	PollReq PollOp = "req"
	PollAck PollOp = "ack"
)

// PollCommand is <poll op="req"|"ack" msgID="..."/> (RFC 5730 §2.9.2.3).
type PollCommand struct {
	XMLName xml.Name `xml:"poll"`
	Op      PollOp   `xml:"op,attr"`
	MsgID   string   `xml:"msgID,attr,omitempty"`
}

// NewPollRequest builds a request for the next queued message.
func NewPollRequest() *PollCommand {
	return &PollCommand{Op: PollReq}
}

// NewPollAck builds an acknowledgement for msgID, removing it from the
// queue.
func NewPollAck(msgID string) *PollCommand {
	return &PollCommand{Op: PollAck, MsgID: msgID}
}
