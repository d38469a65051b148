// SPDX-License-Identifier: GPL-3.0-or-later

// Package contact implements the EPP contact mapping (RFC 5733).
package contact

import (
	"encoding/xml"

	"github.com/bassosimone/eppx"
)

type eppTime = eppx.Time

// NS is the contact-1.0 object namespace.
const NS = "urn:ietf:params:xml:ns:contact-1.0"

// AuthInfo carries the authorization information associated with a
// contact (RFC 5733 §3.2).
type AuthInfo struct {
	Password string `xml:"pw"`
}

// Status is a contact status value (RFC 5733 §2.4).
type Status struct {
	Status string `xml:"s,attr"`
	Lang   string `xml:"lang,attr,omitempty"`
	Text   string `xml:",chardata"`
}

// Address is a postal address (RFC 5733 §2.6).
type Address struct {
	Street      []string `xml:"street,omitempty"`
	City        string   `xml:"city"`
	StateOrProv string   `xml:"sp,omitempty"`
	PostalCode  string   `xml:"pc,omitempty"`
	CountryCode string   `xml:"cc"`
}

// PostalInfo carries a contact's name, organization, and address in
// either "loc" (unrestricted UTF-8) or "int" (7-bit ASCII) form (RFC
// 5733 §2.6).
type PostalInfo struct {
	Type    string  `xml:"type,attr"`
	Name    string  `xml:"name"`
	Org     string  `xml:"org,omitempty"`
	Address Address `xml:"addr"`
}

// Disclose expresses which optional contact data elements the registrant
// has chosen to make public, or to suppress, in WHOIS output (RFC 5733
// §2.9). Flag is the server-defined default sense: if Flag is "0", the
// listed elements are disclosed and everything else is suppressed; if
// "1", the listed elements are suppressed and everything else disclosed.
//
// Voice, Fax, and Email are presence-only elements (RFC 5733 §2.9: they
// carry no content, only their presence or absence under <disclose>), so
// they are typed as a pointer to the empty [DiscloseFlag] rather than
// bool: a non-nil value marshals as an empty element (<voice></voice>;
// [encoding/xml] never self-closes), a nil value omits it entirely.
type Disclose struct {
	Flag  string         `xml:"flag,attr"`
	Name  []DiscloseItem `xml:"name,omitempty"`
	Org   []DiscloseItem `xml:"org,omitempty"`
	Addr  []DiscloseItem `xml:"addr,omitempty"`
	Voice *DiscloseFlag  `xml:"voice,omitempty"`
	Fax   *DiscloseFlag  `xml:"fax,omitempty"`
	Email *DiscloseFlag  `xml:"email,omitempty"`
}

// DiscloseFlag marks a disclose child element as present. The zero value
// is ready to use: pass &DiscloseFlag{} to set Disclose.Voice/Fax/Email.
type DiscloseFlag struct{}

// DiscloseItem names the "loc" or "int" postal info form a disclose rule
// applies to.
type DiscloseItem struct {
	Type string `xml:"type,attr"`
}

// CheckCommand is <contact:check> (RFC 5733 §3.1.1).
type CheckCommand struct {
	XMLName xml.Name  `xml:"check"`
	Body    checkBody `xml:"urn:ietf:params:xml:ns:contact-1.0 check"`
}

type checkBody struct {
	IDs []string `xml:"id"`
}

// NewCheck builds a contact availability check for one or more IDs.
func NewCheck(ids ...string) *CheckCommand {
	return &CheckCommand{Body: checkBody{IDs: ids}}
}

// CheckDatum is one <contact:cd> element of a check response.
type CheckDatum struct {
	ID     CheckID `xml:"id"`
	Reason string  `xml:"reason,omitempty"`
}

// CheckID carries a checked ID and its availability.
type CheckID struct {
	ID        string `xml:",chardata"`
	Available bool   `xml:"avail,attr"`
}

// CheckResponse is <contact:chkData> (RFC 5733 §3.1.1).
type CheckResponse struct {
	XMLName xml.Name     `xml:"urn:ietf:params:xml:ns:contact-1.0 chkData"`
	Checks  []CheckDatum `xml:"cd"`
}

// InfoCommand is <contact:info> (RFC 5733 §3.1.2).
type InfoCommand struct {
	XMLName xml.Name `xml:"info"`
	Body    infoBody `xml:"urn:ietf:params:xml:ns:contact-1.0 info"`
}

type infoBody struct {
	ID       string    `xml:"id"`
	AuthInfo *AuthInfo `xml:"authInfo,omitempty"`
}

// NewInfo builds a contact info request.
func NewInfo(id string, authInfo *AuthInfo) *InfoCommand {
	return &InfoCommand{Body: infoBody{ID: id, AuthInfo: authInfo}}
}

// InfoResponse is <contact:infData> (RFC 5733 §3.1.2).
type InfoResponse struct {
	XMLName    xml.Name     `xml:"urn:ietf:params:xml:ns:contact-1.0 infData"`
	ID         string       `xml:"id"`
	ROID       string       `xml:"roid"`
	Status     []Status     `xml:"status"`
	PostalInfo []PostalInfo `xml:"postalInfo"`
	Voice      string       `xml:"voice,omitempty"`
	Fax        string       `xml:"fax,omitempty"`
	Email      string       `xml:"email"`
	ClID       string       `xml:"clID"`
	CrID       string       `xml:"crID,omitempty"`
	CrDate     *eppTime     `xml:"crDate,omitempty"`
	UpID       string       `xml:"upID,omitempty"`
	UpDate     *eppTime     `xml:"upDate,omitempty"`
	TrDate     *eppTime     `xml:"trDate,omitempty"`
	AuthInfo   *AuthInfo    `xml:"authInfo,omitempty"`
	Disclose   *Disclose    `xml:"disclose,omitempty"`
}

// CreateCommand is <contact:create> (RFC 5733 §3.2.1).
type CreateCommand struct {
	XMLName xml.Name   `xml:"create"`
	Body    createBody `xml:"urn:ietf:params:xml:ns:contact-1.0 create"`
}

type createBody struct {
	ID         string       `xml:"id"`
	PostalInfo []PostalInfo `xml:"postalInfo"`
	Voice      string       `xml:"voice,omitempty"`
	Fax        string       `xml:"fax,omitempty"`
	Email      string       `xml:"email"`
	AuthInfo   AuthInfo     `xml:"authInfo"`
	Disclose   *Disclose    `xml:"disclose,omitempty"`
}

// NewCreate builds a contact create request.
func NewCreate(id string, postalInfo []PostalInfo, voice, fax, email string, authInfo AuthInfo, disclose *Disclose) *CreateCommand {
	return &CreateCommand{Body: createBody{
		ID: id, PostalInfo: postalInfo, Voice: voice, Fax: fax, Email: email,
		AuthInfo: authInfo, Disclose: disclose,
	}}
}

// CreateResponse is <contact:creData> (RFC 5733 §3.2.1).
type CreateResponse struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:contact-1.0 creData"`
	ID      string   `xml:"id"`
	CrDate  eppTime  `xml:"crDate"`
}

// DeleteCommand is <contact:delete> (RFC 5733 §3.2.2).
type DeleteCommand struct {
	XMLName xml.Name   `xml:"delete"`
	Body    deleteBody `xml:"urn:ietf:params:xml:ns:contact-1.0 delete"`
}

type deleteBody struct {
	ID string `xml:"id"`
}

// NewDelete builds a contact delete request.
func NewDelete(id string) *DeleteCommand {
	return &DeleteCommand{Body: deleteBody{ID: id}}
}

// UpdateAddRem carries the statuses to add or remove from a contact
// (RFC 5733 §3.2.4).
type UpdateAddRem struct {
	Status []Status `xml:"status,omitempty"`
}

// UpdateChg carries the elements to change outright.
type UpdateChg struct {
	PostalInfo []PostalInfo `xml:"postalInfo,omitempty"`
	Voice      string       `xml:"voice,omitempty"`
	Fax        string       `xml:"fax,omitempty"`
	Email      string       `xml:"email,omitempty"`
	AuthInfo   *AuthInfo    `xml:"authInfo,omitempty"`
	Disclose   *Disclose    `xml:"disclose,omitempty"`
}

// UpdateCommand is <contact:update> (RFC 5733 §3.2.4).
type UpdateCommand struct {
	XMLName xml.Name   `xml:"update"`
	Body    updateBody `xml:"urn:ietf:params:xml:ns:contact-1.0 update"`
}

type updateBody struct {
	ID  string        `xml:"id"`
	Add *UpdateAddRem `xml:"add,omitempty"`
	Rem *UpdateAddRem `xml:"rem,omitempty"`
	Chg *UpdateChg    `xml:"chg,omitempty"`
}

// NewUpdate builds a contact update request.
func NewUpdate(id string, add, rem *UpdateAddRem, chg *UpdateChg) *UpdateCommand {
	return &UpdateCommand{Body: updateBody{ID: id, Add: add, Rem: rem, Chg: chg}}
}

// Transfer command/response reuse the same op/status shape as the domain
// mapping (RFC 5733 §3.2.5 mirrors RFC 5731 §3.2.5 structurally, minus
// period).

// TransferOp is the operation requested of a <contact:transfer> command.
type TransferOp string

const (
	TransferRequest TransferOp = "request"
	TransferQuery   TransferOp = "query"
	TransferCancel  TransferOp = "cancel"
	TransferReject  TransferOp = "reject"
	TransferApprove TransferOp = "approve"
)

// TransferCommand is <transfer op="..."><contact:transfer>...
type TransferCommand struct {
	XMLName xml.Name     `xml:"transfer"`
	Op      TransferOp   `xml:"op,attr"`
	Body    transferBody `xml:"urn:ietf:params:xml:ns:contact-1.0 transfer"`
}

type transferBody struct {
	ID       string    `xml:"id"`
	AuthInfo *AuthInfo `xml:"authInfo,omitempty"`
}

// NewTransfer builds a contact transfer command for the given operation.
func NewTransfer(op TransferOp, id string, authInfo *AuthInfo) *TransferCommand {
	return &TransferCommand{Op: op, Body: transferBody{ID: id, AuthInfo: authInfo}}
}

// TransferResponse is <contact:trnData> (RFC 5733 §3.2.5).
type TransferResponse struct {
	XMLName  xml.Name `xml:"urn:ietf:params:xml:ns:contact-1.0 trnData"`
	ID       string   `xml:"id"`
	TrStatus string   `xml:"trStatus"`
	ReID     string   `xml:"reID"`
	ReDate   eppTime  `xml:"reDate"`
	AcID     string   `xml:"acID"`
	AcDate   eppTime  `xml:"acDate"`
}
