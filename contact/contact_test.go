// SPDX-License-Identifier: GPL-3.0-or-later

package contact

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommandMarshal(t *testing.T) {
	cmd := NewCreate(
		"sh8013",
		[]PostalInfo{{
			Type: "int",
			Name: "John Doe",
			Org:  "Example Inc.",
			Address: Address{
				Street:      []string{"123 Example Dr."},
				City:        "Dulles",
				StateOrProv: "VA",
				PostalCode:  "20166-6503",
				CountryCode: "US",
			},
		}},
		"+1.7035555555", "", "jdoe@example.com",
		AuthInfo{Password: "2fooBAR"},
		&Disclose{Flag: "0", Voice: &DiscloseFlag{}},
	)
	out, err := xml.Marshal(cmd)
	require.NoError(t, err)
	assert.Contains(t, string(out), `xmlns="`+NS+`"`)
	assert.Contains(t, string(out), `<postalInfo type="int">`)
	assert.Contains(t, string(out), "<name>John Doe</name>")
	assert.Contains(t, string(out), `<disclose flag="0">`)
	assert.Contains(t, string(out), "<voice></voice>")
	assert.NotContains(t, string(out), "<fax")
	assert.NotContains(t, string(out), "<email></email>")
}

func TestInfoResponseUnmarshal(t *testing.T) {
	doc := `<infData xmlns="` + NS + `">
		<id>sh8013</id>
		<roid>SH8013-REP</roid>
		<status s="linked"/>
		<postalInfo type="loc">
			<name>John Doe</name>
			<addr><city>Dulles</city><cc>US</cc></addr>
		</postalInfo>
		<voice>+1.7035555555</voice>
		<email>jdoe@example.com</email>
		<clID>ClientX</clID>
		<crDate>2025-04-03T22:00:00.0Z</crDate>
		<authInfo><pw>2fooBAR</pw></authInfo>
	</infData>`

	var resp InfoResponse
	require.NoError(t, xml.Unmarshal([]byte(doc), &resp))
	assert.Equal(t, "sh8013", resp.ID)
	require.Len(t, resp.PostalInfo, 1)
	assert.Equal(t, "John Doe", resp.PostalInfo[0].Name)
	assert.Equal(t, "Dulles", resp.PostalInfo[0].Address.City)
	require.NotNil(t, resp.AuthInfo)
	assert.Equal(t, "2fooBAR", resp.AuthInfo.Password)
}

func TestCheckCommandMarshal(t *testing.T) {
	cmd := NewCheck("sh8013", "sh8014")
	out, err := xml.Marshal(cmd)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<id>sh8013</id>")
	assert.Contains(t, string(out), "<id>sh8014</id>")
}

func TestTransferCommandMarshal(t *testing.T) {
	cmd := NewTransfer(TransferRequest, "sh8013", &AuthInfo{Password: "secret"})
	out, err := xml.Marshal(cmd)
	require.NoError(t, err)
	assert.Contains(t, string(out), `op="request"`)
	assert.Contains(t, string(out), "<id>sh8013</id>")
}
