// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"encoding/xml"
	"fmt"
	"time"
)

// Namespace and schema-location constants for the EPP envelope itself
// (RFC 5730 §2.1). Mapping and extension namespaces live in their
// respective subpackages.
const (
	NSEPP             = "urn:ietf:params:xml:ns:epp-1.0"
	nsXSI             = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocationEPP = NSEPP + " epp-1.0.xsd"
)

// SuccessCodeMax is the highest result code considered a success
// (RFC 5730 §3: codes in [1000,1999] denote success).
const SuccessCodeMax = 1999

// RawXML preserves the inner XML of an element verbatim. It is used for
// payloads whose concrete shape is not known at the call site: resData
// and extension bodies are captured this way by the transaction engine
// before being decoded into the caller's declared types, and unknown
// extension elements are retained as opaque XML rather than failing
// decode.
type RawXML []byte

// UnmarshalXML implements [xml.Unmarshaler].
func (x *RawXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var inner struct {
		Data []byte `xml:",innerxml"`
	}
	if err := d.DecodeElement(&inner, &start); err != nil {
		return err
	}
	*x = inner.Data
	return nil
}

// MarshalXML implements [xml.Marshaler].
func (x RawXML) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	inner := struct {
		Data []byte `xml:",innerxml"`
	}{Data: []byte(x)}
	return e.EncodeElement(&inner, start)
}

// Result is one <result> element in a response (RFC 5730 §2.6).
type Result struct {
	// Code is the numeric result code. Codes in [1000,1999] denote
	// success; codes in [2000,2999] denote failure.
	Code int `xml:"code,attr"`

	// Message is the human-readable result message.
	Message string `xml:"msg"`

	// Values holds structured <value> detail, present on some failures
	// (e.g. the offending element echoed back).
	Values []RawXML `xml:"value,omitempty"`

	// ExtValues holds <extValue> detail: an echoed value paired with a
	// human-readable reason.
	ExtValues []ExtValue `xml:"extValue,omitempty"`
}

// Success reports whether r is a success-class result.
func (r Result) Success() bool {
	return r.Code >= 1000 && r.Code <= SuccessCodeMax
}

// ExtValue pairs an echoed offending value with a human-readable reason.
type ExtValue struct {
	Value  RawXML `xml:"value"`
	Reason string `xml:"reason"`
}

// TrID carries the client and server transaction identifiers that
// correlate a response with the request that produced it.
type TrID struct {
	ClTRID string `xml:"clTRID"`
	SvTRID string `xml:"svTRID"`
}

// MsgQueue is the poll-queue summary optionally carried by a response
// (RFC 5730 §2.7).
type MsgQueue struct {
	Count int    `xml:"count,attr"`
	ID    string `xml:"id,attr"`
	QDate *Time  `xml:"qDate,omitempty"`
	Msg   string `xml:"msg,omitempty"`
}

// Period is a registration or renewal period: 1..99 units of years or
// months (RFC 5731 §1.1).
type Period struct {
	Value int    `xml:",chardata"`
	Unit  string `xml:"unit,attr"`
}

// Years returns a [Period] of n years.
func Years(n int) Period { return Period{Value: n, Unit: "y"} }

// Months returns a [Period] of n months.
func Months(n int) Period { return Period{Value: n, Unit: "m"} }

// Time is an ISO-8601 timestamp with a timezone offset, as used
// throughout EPP responses (crDate, exDate, svDate, qDate, ...).
type Time struct {
	time.Time
}

// NewTime wraps t as a [Time].
func NewTime(t time.Time) Time { return Time{Time: t} }

// MarshalXML implements [xml.Marshaler], emitting RFC 3339 text.
func (t Time) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(t.UTC().Format(time.RFC3339), start)
}

// UnmarshalXML implements [xml.Unmarshaler], accepting any ISO-8601
// variant a registry commonly emits (with or without fractional seconds).
func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	parsed, err := parseEPPTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func parseEPPTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05Z0700"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("eppx: invalid EPP timestamp %q", s)
}

// NoExtension is used as the extension type parameter for commands that
// carry no extension, and decodes to itself when a response carries no
// extension element the caller cares about.
type NoExtension struct{}

// rawEnvelope is the generic parse target for any <epp> document this
// client receives: greeting, or response with resData/extension captured
// as opaque bytes for typed decoding by [Transact].
type rawEnvelope struct {
	XMLName  xml.Name     `xml:"urn:ietf:params:xml:ns:epp-1.0 epp"`
	Greeting *Greeting    `xml:"greeting"`
	Response *rawResponse `xml:"response"`
}

type rawResponse struct {
	Results   []Result  `xml:"result"`
	MsgQueue  *MsgQueue `xml:"msgQ"`
	ResData   RawXML    `xml:"resData"`
	Extension RawXML    `xml:"extension"`
	TrID      TrID      `xml:"trID"`
}

// marshalEnvelope builds a complete <epp><command>...</command></epp>
// document: the command body (which already knows its own base-protocol
// verb element and mapping namespace), an optional <extension> sibling,
// and the mandatory <clTRID>.
func marshalEnvelope(command, extension any, hasExtension bool, clTRID string) ([]byte, error) {
	bodyXML, err := xml.Marshal(command)
	if err != nil {
		return nil, err
	}

	var extXML []byte
	if hasExtension {
		extXML, err = xml.Marshal(extension)
		if err != nil {
			return nil, err
		}
	}

	var escapedTrID []byte
	escapedTrID, err = xmlEscapeString(clTRID)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(bodyXML)+len(extXML)+len(escapedTrID)+256)
	out = append(out, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`...)
	out = append(out, `<epp xmlns="`...)
	out = append(out, NSEPP...)
	out = append(out, `" xmlns:xsi="`...)
	out = append(out, nsXSI...)
	out = append(out, `" xsi:schemaLocation="`...)
	out = append(out, schemaLocationEPP...)
	out = append(out, `"><command>`...)
	out = append(out, bodyXML...)
	if hasExtension {
		out = append(out, `<extension>`...)
		out = append(out, extXML...)
		out = append(out, `</extension>`...)
	}
	out = append(out, `<clTRID>`...)
	out = append(out, escapedTrID...)
	out = append(out, `</clTRID></command></epp>`...)
	return out, nil
}

func xmlEscapeString(s string) ([]byte, error) {
	var buf []byte
	w := &byteSliceWriter{buf: &buf}
	if err := xml.EscapeText(w, []byte(s)); err != nil {
		return nil, err
	}
	return buf, nil
}

// byteSliceWriter is a minimal io.Writer appending to an owned []byte,
// used to capture [xml.EscapeText] output without pulling in bytes.Buffer
// for a single call site.
type byteSliceWriter struct {
	buf *[]byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}

// helloXML is the complete framed document sent to solicit a fresh
// greeting (RFC 5730 §2.9.2).
const helloXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` +
	`<epp xmlns="` + NSEPP + `"><hello/></epp>`
