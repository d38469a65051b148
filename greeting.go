// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"encoding/xml"
)

// Greeting is the server's self-description, sent unsolicited on connect
// and again in reply to <hello> (RFC 5730 §2.4).
type Greeting struct {
	ServerID   string    `xml:"svID"`
	ServerDate Time      `xml:"svDate"`
	ServiceMenu ServiceMenu `xml:"svcMenu"`
	DCP        RawXML    `xml:"dcp"`
}

// ServiceMenu advertises the protocol versions, languages, object
// namespaces and extension namespaces a server supports.
type ServiceMenu struct {
	Versions      []string      `xml:"version"`
	Languages     []string      `xml:"lang"`
	ObjURIs       []string      `xml:"objURI"`
	ExtensionURIs []string      `xml:"svcExtension>extURI,omitempty"`
}

// Supports reports whether the greeting advertises objURI.
func (g *Greeting) Supports(objURI string) bool {
	for _, u := range g.ServiceMenu.ObjURIs {
		if u == objURI {
			return true
		}
	}
	return false
}

// SupportsExtension reports whether the greeting advertises extURI.
func (g *Greeting) SupportsExtension(extURI string) bool {
	for _, u := range g.ServiceMenu.ExtensionURIs {
		if u == extURI {
			return true
		}
	}
	return false
}

// readGreeting reads one frame from fr and decodes it as a <greeting>.
// It fails with [KindProtocolDesync] if the frame is an <epp> document
// without a <greeting>, such as a <response>, and with [KindXMLDecode] if
// the frame is not a well-formed <epp> document.
func readGreeting(ctx context.Context, fr *Framer) (*Greeting, error) {
	payload, err := fr.ReadFrame(ctx)
	if err != nil {
		return nil, err
	}

	var env rawEnvelope
	if err := xml.Unmarshal(payload, &env); err != nil {
		return nil, &Error{Op: "ReadGreeting", Kind: KindXMLDecode, Err: err}
	}
	if env.Greeting == nil {
		return nil, &Error{Op: "ReadGreeting", Kind: KindProtocolDesync, Err: errNotAGreeting}
	}
	return env.Greeting, nil
}

var errNotAGreeting = errInvalidFrame("expected a <greeting> document")
