// SPDX-License-Identifier: GPL-3.0-or-later

// Package host implements the EPP host mapping (RFC 5732).
package host

import (
	"encoding/xml"

	"github.com/bassosimone/eppx"
)

type eppTime = eppx.Time

// NS is the host-1.0 object namespace.
const NS = "urn:ietf:params:xml:ns:host-1.0"

// Status is a host status value (RFC 5732 §2.4).
type Status struct {
	Status string `xml:"s,attr"`
	Lang   string `xml:"lang,attr,omitempty"`
	Text   string `xml:",chardata"`
}

// Addr is a host IP address (RFC 5732 §2.2).
type Addr struct {
	IP   string `xml:"ip,attr,omitempty"` // "v4" or "v6"; empty means v4
	Addr string `xml:",chardata"`
}

// CheckCommand is <host:check> (RFC 5732 §3.1.1).
type CheckCommand struct {
	XMLName xml.Name  `xml:"check"`
	Body    checkBody `xml:"urn:ietf:params:xml:ns:host-1.0 check"`
}

type checkBody struct {
	Names []string `xml:"name"`
}

// NewCheck builds a host availability check for one or more names.
func NewCheck(names ...string) *CheckCommand {
	return &CheckCommand{Body: checkBody{Names: names}}
}

// CheckDatum is one <host:cd> element of a check response.
type CheckDatum struct {
	Name   CheckName `xml:"name"`
	Reason string    `xml:"reason,omitempty"`
}

// CheckName carries a checked name and its availability.
type CheckName struct {
	Name      string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// CheckResponse is <host:chkData> (RFC 5732 §3.1.1).
type CheckResponse struct {
	XMLName xml.Name     `xml:"urn:ietf:params:xml:ns:host-1.0 chkData"`
	Checks  []CheckDatum `xml:"cd"`
}

// InfoCommand is <host:info> (RFC 5732 §3.1.2).
type InfoCommand struct {
	XMLName xml.Name `xml:"info"`
	Body    infoBody `xml:"urn:ietf:params:xml:ns:host-1.0 info"`
}

type infoBody struct {
	Name string `xml:"name"`
}

// NewInfo builds a host info request.
func NewInfo(name string) *InfoCommand {
	return &InfoCommand{Body: infoBody{Name: name}}
}

// InfoResponse is <host:infData> (RFC 5732 §3.1.2).
type InfoResponse struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:host-1.0 infData"`
	Name    string   `xml:"name"`
	ROID    string   `xml:"roid"`
	Status  []Status `xml:"status"`
	Addr    []Addr   `xml:"addr,omitempty"`
	ClID    string   `xml:"clID"`
	CrID    string   `xml:"crID,omitempty"`
	CrDate  *eppTime `xml:"crDate,omitempty"`
	UpID    string   `xml:"upID,omitempty"`
	UpDate  *eppTime `xml:"upDate,omitempty"`
	TrDate  *eppTime `xml:"trDate,omitempty"`
}

// CreateCommand is <host:create> (RFC 5732 §3.2.1).
type CreateCommand struct {
	XMLName xml.Name   `xml:"create"`
	Body    createBody `xml:"urn:ietf:params:xml:ns:host-1.0 create"`
}

type createBody struct {
	Name string `xml:"name"`
	Addr []Addr `xml:"addr,omitempty"`
}

// NewCreate builds a host create request. addrs may be empty for an
// external (non-subordinate) host.
func NewCreate(name string, addrs []Addr) *CreateCommand {
	return &CreateCommand{Body: createBody{Name: name, Addr: addrs}}
}

// CreateResponse is <host:creData> (RFC 5732 §3.2.1).
type CreateResponse struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:host-1.0 creData"`
	Name    string   `xml:"name"`
	CrDate  eppTime  `xml:"crDate"`
}

// DeleteCommand is <host:delete> (RFC 5732 §3.2.2).
type DeleteCommand struct {
	XMLName xml.Name   `xml:"delete"`
	Body    deleteBody `xml:"urn:ietf:params:xml:ns:host-1.0 delete"`
}

type deleteBody struct {
	Name string `xml:"name"`
}

// NewDelete builds a host delete request.
func NewDelete(name string) *DeleteCommand {
	return &DeleteCommand{Body: deleteBody{Name: name}}
}

// UpdateAddRem carries the addresses/statuses to add or remove from a
// host (RFC 5732 §3.2.3).
type UpdateAddRem struct {
	Addr   []Addr   `xml:"addr,omitempty"`
	Status []Status `xml:"status,omitempty"`
}

// UpdateChg carries the rename target, if any.
type UpdateChg struct {
	Name string `xml:"name,omitempty"`
}

// UpdateCommand is <host:update> (RFC 5732 §3.2.3).
type UpdateCommand struct {
	XMLName xml.Name   `xml:"update"`
	Body    updateBody `xml:"urn:ietf:params:xml:ns:host-1.0 update"`
}

type updateBody struct {
	Name string        `xml:"name"`
	Add  *UpdateAddRem `xml:"add,omitempty"`
	Rem  *UpdateAddRem `xml:"rem,omitempty"`
	Chg  *UpdateChg    `xml:"chg,omitempty"`
}

// NewUpdate builds a host update request.
func NewUpdate(name string, add, rem *UpdateAddRem, chg *UpdateChg) *UpdateCommand {
	return &UpdateCommand{Body: updateBody{Name: name, Add: add, Rem: rem, Chg: chg}}
}
