// SPDX-License-Identifier: GPL-3.0-or-later

// Package namestore implements Verisign's Namestore extension, which
// selects the registry subproduct (TLD group) a check/info/create/
// transfer command applies to when a single EPP account is provisioned
// across multiple Verisign-operated registries.
package namestore

import "encoding/xml"

// NS is the namestoreExt extension namespace.
const NS = "http://www.verisign-grs.com/epp/namestoreExt-1.1"

// Extension is <namestoreExt:namestoreExt>, carried as the extension of
// a domain or host check/info/create/transfer command.
type Extension struct {
	XMLName    xml.Name `xml:"http://www.verisign-grs.com/epp/namestoreExt-1.1 namestoreExt"`
	SubProduct string   `xml:"subProduct"`
}

// New builds a namestore extension selecting subProduct, e.g. "dotCOM".
func New(subProduct string) *Extension {
	return &Extension{SubProduct: subProduct}
}
