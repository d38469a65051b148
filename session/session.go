// SPDX-License-Identifier: GPL-3.0-or-later

// Package session implements the EPP session management commands
// (RFC 5730 §2.9.1, §2.9.4): login and logout.
package session

import "encoding/xml"

// Options carries the protocol version and language negotiated at login
// (RFC 5730 §2.9.1.1).
type Options struct {
	Version string `xml:"version"`
	Lang    string `xml:"lang"`
}

// Services advertises the object and extension namespaces the client
// intends to use for the session (RFC 5730 §2.9.1.1).
type Services struct {
	ObjURIs       []string `xml:"objURI"`
	ExtensionURIs []string `xml:"svcExtension>extURI,omitempty"`
}

// LoginCommand is <login> (RFC 5730 §2.9.1.1).
type LoginCommand struct {
	XMLName xml.Name `xml:"login"`
	ClID    string   `xml:"clID"`
	Pw      string   `xml:"pw"`
	NewPw   string   `xml:"newPW,omitempty"`
	Options Options  `xml:"options"`
	Svcs    Services `xml:"svcs"`
}

// NewLogin builds a login command. Pass newPw to change the password as
// part of login (RFC 5730 §2.9.1.1); otherwise leave it empty.
func NewLogin(clID, pw, newPw string, objURIs, extensionURIs []string) *LoginCommand {
	return &LoginCommand{
		ClID:  clID,
		Pw:    pw,
		NewPw: newPw,
		Options: Options{
			Version: "1.0",
			Lang:    "en",
		},
		Svcs: Services{ObjURIs: objURIs, ExtensionURIs: extensionURIs},
	}
}

// LogoutCommand is <logout/> (RFC 5730 §2.9.4.1): it carries no data
// beyond the base-protocol element itself.
type LogoutCommand struct {
	XMLName xml.Name `xml:"logout"`
}

// NewLogout builds a logout command.
func NewLogout() *LogoutCommand {
	return &LogoutCommand{}
}
