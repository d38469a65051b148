// SPDX-License-Identifier: GPL-3.0-or-later

// Package domain implements the EPP domain name mapping (RFC 5731).
//
// Every command type here is meant to be used as the C type parameter of
// [eppx.Request] and [eppx.Response]; construct one with the matching
// New*Command function and pass it to [eppx.Transact].
package domain

import (
	"encoding/xml"

	"github.com/bassosimone/eppx"
)

// eppTime is a local alias so this file's field declarations read the
// same as the other mapping packages without repeating the eppx prefix.
type eppTime = eppx.Time

// NS is the domain-1.0 object namespace, advertised by a server in its
// greeting's objURI list when it supports this mapping.
const NS = "urn:ietf:params:xml:ns:domain-1.0"

// AuthInfo carries the authorization information associated with a
// domain (RFC 5731 §3.2.2).
type AuthInfo struct {
	Password string `xml:"pw"`
}

// ContactRef links a contact ID to a domain in a specific role (RFC
// 5731 §3.2.1).
type ContactRef struct {
	Type string `xml:"type,attr"`
	ID   string `xml:",chardata"`
}

// Status is a domain status value (RFC 5731 §2.3, RFC 5730 §2.3).
type Status struct {
	Status string `xml:"s,attr"`
	Lang   string `xml:"lang,attr,omitempty"`
	Text   string `xml:",chardata"`
}

// HostAttr carries a host's name and glue addresses, used when a
// registry manages subordinate hosts by attribute rather than by
// reference (RFC 5731 §2.9, "hostAttr" model).
type HostAttr struct {
	Name string   `xml:"hostName"`
	Addr []string `xml:"hostAddr,omitempty"`
}

// NameServers is the <domain:ns> element, carrying either host
// references (hostObj) or host attributes (hostAttr), per the server's
// advertised host model.
type NameServers struct {
	HostObj  []string   `xml:"hostObj,omitempty"`
	HostAttr []HostAttr `xml:"hostAttr,omitempty"`
}

// CheckCommand is <domain:check> (RFC 5731 §3.1.1), wrapped in the
// base-protocol <check> element.
type CheckCommand struct {
	XMLName xml.Name `xml:"check"`
	Body    checkBody `xml:"urn:ietf:params:xml:ns:domain-1.0 check"`
}

type checkBody struct {
	Names []string `xml:"name"`
}

// NewCheck builds a domain availability check for one or more names.
func NewCheck(names ...string) *CheckCommand {
	return &CheckCommand{Body: checkBody{Names: names}}
}

// CheckDatum is one <domain:cd> element of a check response.
type CheckDatum struct {
	Name      CheckName `xml:"name"`
	Reason    string    `xml:"reason,omitempty"`
}

// CheckName carries a checked name and its availability.
type CheckName struct {
	Name      string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// CheckResponse is <domain:chkData> (RFC 5731 §3.1.1).
type CheckResponse struct {
	XMLName xml.Name     `xml:"urn:ietf:params:xml:ns:domain-1.0 chkData"`
	Checks  []CheckDatum `xml:"cd"`
}

// InfoCommand is <domain:info> (RFC 5731 §3.1.2).
type InfoCommand struct {
	XMLName xml.Name `xml:"info"`
	Body    infoBody `xml:"urn:ietf:params:xml:ns:domain-1.0 info"`
}

type infoBody struct {
	Name     infoName  `xml:"name"`
	AuthInfo *AuthInfo `xml:"authInfo,omitempty"`
}

type infoName struct {
	Name  string `xml:",chardata"`
	Hosts string `xml:"hosts,attr,omitempty"`
}

// NewInfo builds a domain info request. hosts selects which subordinate
// hosts the server reports back: "all" (default), "del", or "sub"; pass
// "" for the server default.
func NewInfo(name, hosts string, authInfo *AuthInfo) *InfoCommand {
	return &InfoCommand{Body: infoBody{Name: infoName{Name: name, Hosts: hosts}, AuthInfo: authInfo}}
}

// InfoResponse is <domain:infData> (RFC 5731 §3.1.2).
type InfoResponse struct {
	XMLName    xml.Name     `xml:"urn:ietf:params:xml:ns:domain-1.0 infData"`
	Name       string       `xml:"name"`
	ROID       string       `xml:"roid"`
	Status     []Status     `xml:"status"`
	Registrant string       `xml:"registrant,omitempty"`
	Contacts   []ContactRef `xml:"contact,omitempty"`
	NS         *NameServers `xml:"ns,omitempty"`
	Host       []string     `xml:"host,omitempty"`
	ClID       string       `xml:"clID"`
	CrID       string       `xml:"crID,omitempty"`
	CrDate     *eppTime     `xml:"crDate,omitempty"`
	UpID       string       `xml:"upID,omitempty"`
	UpDate     *eppTime     `xml:"upDate,omitempty"`
	ExDate     *eppTime     `xml:"exDate,omitempty"`
	TrDate     *eppTime     `xml:"trDate,omitempty"`
	AuthInfo   *AuthInfo    `xml:"authInfo,omitempty"`
}

// CreateCommand is <domain:create> (RFC 5731 §3.2.1).
type CreateCommand struct {
	XMLName xml.Name   `xml:"create"`
	Body    createBody `xml:"urn:ietf:params:xml:ns:domain-1.0 create"`
}

type createBody struct {
	Name       string       `xml:"name"`
	Period     *eppx.Period `xml:"period,omitempty"`
	NS         *NameServers `xml:"ns,omitempty"`
	Registrant string       `xml:"registrant,omitempty"`
	Contacts   []ContactRef `xml:"contact,omitempty"`
	AuthInfo   AuthInfo     `xml:"authInfo"`
}

// NewCreate builds a domain create request. periodYears may be 0 to omit
// the period element and accept the server default.
func NewCreate(name string, periodYears int, ns *NameServers, registrant string, contacts []ContactRef, authInfo AuthInfo) *CreateCommand {
	body := createBody{Name: name, NS: ns, Registrant: registrant, Contacts: contacts, AuthInfo: authInfo}
	if periodYears > 0 {
		p := eppx.Years(periodYears)
		body.Period = &p
	}
	return &CreateCommand{Body: body}
}

// CreateResponse is <domain:creData> (RFC 5731 §3.2.1).
type CreateResponse struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 creData"`
	Name    string   `xml:"name"`
	CrDate  eppTime  `xml:"crDate"`
	ExDate  *eppTime `xml:"exDate,omitempty"`
}

// DeleteCommand is <domain:delete> (RFC 5731 §3.2.2).
type DeleteCommand struct {
	XMLName xml.Name   `xml:"delete"`
	Body    deleteBody `xml:"urn:ietf:params:xml:ns:domain-1.0 delete"`
}

type deleteBody struct {
	Name string `xml:"name"`
}

// NewDelete builds a domain delete request.
func NewDelete(name string) *DeleteCommand {
	return &DeleteCommand{Body: deleteBody{Name: name}}
}

// RenewCommand is <domain:renew> (RFC 5731 §3.2.3).
type RenewCommand struct {
	XMLName xml.Name   `xml:"renew"`
	Body    renewBody  `xml:"urn:ietf:params:xml:ns:domain-1.0 renew"`
}

type renewBody struct {
	Name        string   `xml:"name"`
	CurExpDate  string   `xml:"curExpDate"`
	Period      *eppx.Period `xml:"period,omitempty"`
}

// NewRenew builds a domain renew request. curExpDate is the date-only
// (YYYY-MM-DD) current expiration the server must match, guarding
// against renewing a domain a concurrent operation already renewed.
func NewRenew(name, curExpDate string, periodYears int) *RenewCommand {
	body := renewBody{Name: name, CurExpDate: curExpDate}
	if periodYears > 0 {
		p := eppx.Years(periodYears)
		body.Period = &p
	}
	return &RenewCommand{Body: body}
}

// RenewResponse is <domain:renData> (RFC 5731 §3.2.3).
type RenewResponse struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:domain-1.0 renData"`
	Name    string   `xml:"name"`
	ExDate  eppTime  `xml:"exDate"`
}

// UpdateAddRem carries the elements to add to or remove from a domain.
type UpdateAddRem struct {
	NS       *NameServers `xml:"ns,omitempty"`
	Contacts []ContactRef `xml:"contact,omitempty"`
	Status   []Status     `xml:"status,omitempty"`
}

// UpdateChg carries the elements to change outright (RFC 5731 §3.2.4).
type UpdateChg struct {
	Registrant string    `xml:"registrant,omitempty"`
	AuthInfo   *AuthInfo `xml:"authInfo,omitempty"`
}

// UpdateCommand is <domain:update> (RFC 5731 §3.2.4).
type UpdateCommand struct {
	XMLName xml.Name   `xml:"update"`
	Body    updateBody `xml:"urn:ietf:params:xml:ns:domain-1.0 update"`
}

type updateBody struct {
	Name string        `xml:"name"`
	Add  *UpdateAddRem `xml:"add,omitempty"`
	Rem  *UpdateAddRem `xml:"rem,omitempty"`
	Chg  *UpdateChg    `xml:"chg,omitempty"`
}

// NewUpdate builds a domain update request. Any of add, rem, chg may be
// nil; at least one must be non-nil (RFC 5731 §3.2.4 requires at least
// one child of <domain:update>), which this constructor does not itself
// enforce since the server is authoritative on validation.
func NewUpdate(name string, add, rem *UpdateAddRem, chg *UpdateChg) *UpdateCommand {
	return &UpdateCommand{Body: updateBody{Name: name, Add: add, Rem: rem, Chg: chg}}
}

// TransferOp is the operation requested of a <domain:transfer> command
// (RFC 5731 §3.2.5).
type TransferOp string

const (
	TransferRequest TransferOp = "request"
	TransferQuery   TransferOp = "query"
	TransferCancel  TransferOp = "cancel"
	TransferReject  TransferOp = "reject"
	TransferApprove TransferOp = "approve"
)

// TransferCommand is <transfer op="..."><domain:transfer>...
type TransferCommand struct {
	XMLName xml.Name        `xml:"transfer"`
	Op      TransferOp      `xml:"op,attr"`
	Body    transferBody    `xml:"urn:ietf:params:xml:ns:domain-1.0 transfer"`
}

type transferBody struct {
	Name     string    `xml:"name"`
	Period   *eppx.Period `xml:"period,omitempty"`
	AuthInfo *AuthInfo `xml:"authInfo,omitempty"`
}

// NewTransfer builds a domain transfer command for the given operation.
// period and authInfo are only meaningful when op is [TransferRequest].
func NewTransfer(op TransferOp, name string, periodYears int, authInfo *AuthInfo) *TransferCommand {
	body := transferBody{Name: name, AuthInfo: authInfo}
	if periodYears > 0 {
		p := eppx.Years(periodYears)
		body.Period = &p
	}
	return &TransferCommand{Op: op, Body: body}
}

// TransferResponse is <domain:trnData> (RFC 5731 §3.2.5).
type TransferResponse struct {
	XMLName   xml.Name   `xml:"urn:ietf:params:xml:ns:domain-1.0 trnData"`
	Name      string     `xml:"name"`
	TrStatus  string     `xml:"trStatus"`
	ReID      string     `xml:"reID"`
	ReDate    eppTime    `xml:"reDate"`
	AcID      string     `xml:"acID"`
	AcDate    eppTime    `xml:"acDate"`
	ExDate    *eppTime   `xml:"exDate,omitempty"`
}
