// SPDX-License-Identifier: GPL-3.0-or-later

// Package lowbalance implements Verisign's low-balance poll extension: an
// unsolicited notification pushed into a registrar's message queue when
// its prepaid account balance drops below a configured threshold.
//
// This is never sent as a command; decode it from the extension of a
// poll-request response by passing [Extension] as the E type parameter
// of [eppx.Response].
package lowbalance

import "encoding/xml"

// NS is the lowbalance-poll extension namespace.
const NS = "http://www.verisign.com/epp/lowbalance-poll-1.0"

// CreditThreshold is the account balance threshold that triggered the
// notification, expressed as either a fixed amount or a percentage of
// the credit limit.
type CreditThreshold struct {
	Fixed   string `xml:"fixed,omitempty"`
	Percent string `xml:"percent,omitempty"`
}

// Extension is <lowbalance-poll:pollData>.
type Extension struct {
	XMLName         xml.Name        `xml:"http://www.verisign.com/epp/lowbalance-poll-1.0 pollData"`
	RegistrarName   string          `xml:"registrarName"`
	CreditLimit     string          `xml:"creditLimit"`
	CreditThreshold CreditThreshold `xml:"creditThreshold"`
	AvailableCredit string          `xml:"availableCredit"`
}
