// SPDX-License-Identifier: GPL-3.0-or-later

// Package rgp implements the Registry Grace Period Mapping (RFC 3915):
// an extension carried alongside a domain info response (rgpStatus) or a
// domain update command (the restore request/report).
package rgp

import (
	"encoding/xml"

	"github.com/bassosimone/eppx"
)

type eppTime = eppx.Time

// NS is the rgp-1.0 extension namespace.
const NS = "urn:ietf:params:xml:ns:rgp-1.0"

// Status is one <rgp:rgpStatus> value (RFC 3915 §3.1.1): e.g.
// "addPeriod", "autoRenewPeriod", "renewPeriod", "transferPeriod",
// "redemptionPeriod", "pendingDelete", "pendingRestore".
type Status struct {
	Status string `xml:"s,attr"`
}

// InfoExtension is <rgp:infData>, returned as an extension to a domain
// info response when the domain carries a grace-period status.
type InfoExtension struct {
	XMLName xml.Name `xml:"urn:ietf:params:xml:ns:rgp-1.0 infData"`
	Status  []Status `xml:"rgpStatus"`
}

// RestoreOp selects between requesting restoration and submitting the
// post-restoration report (RFC 3915 §3.2.1, §3.2.2).
type RestoreOp string

const (
	RestoreRequest RestoreOp = "request"
	RestoreReport  RestoreOp = "report"
)

// Report is the restoration report required within 7 days of a restore
// request (RFC 3915 §3.2.2).
type Report struct {
	PreData   string   `xml:"preData"`
	PostData  string   `xml:"postData"`
	DelTime   eppTime  `xml:"delTime"`
	ResTime   eppTime  `xml:"resTime"`
	ResReason string   `xml:"resReason"`
	Statement []string `xml:"statement"`
	Other     string   `xml:"other,omitempty"`
}

// UpdateExtension is <rgp:update>, carried as the extension of a domain
// update command to request restoration or submit its report.
type UpdateExtension struct {
	XMLName xml.Name  `xml:"urn:ietf:params:xml:ns:rgp-1.0 update"`
	Restore restoreEl `xml:"restore"`
}

type restoreEl struct {
	Op     RestoreOp `xml:"op,attr"`
	Report *Report   `xml:"report,omitempty"`
}

// NewRestoreRequest builds the rgp:update extension requesting
// restoration of a domain in the redemptionPeriod state.
func NewRestoreRequest() *UpdateExtension {
	return &UpdateExtension{Restore: restoreEl{Op: RestoreRequest}}
}

// NewRestoreReport builds the rgp:update extension submitting the
// post-restoration report.
func NewRestoreReport(report Report) *UpdateExtension {
	return &UpdateExtension{Restore: restoreEl{Op: RestoreReport, Report: &report}}
}
