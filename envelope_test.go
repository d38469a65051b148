// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultSuccess(t *testing.T) {
	assert.True(t, Result{Code: 1000}.Success())
	assert.True(t, Result{Code: 1999}.Success())
	assert.False(t, Result{Code: 2000}.Success())
	assert.False(t, Result{Code: 999}.Success())
}

func TestTimeRoundTrip(t *testing.T) {
	type doc struct {
		XMLName xml.Name `xml:"t"`
		When    Time     `xml:"when"`
	}

	want := NewTime(time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC))
	out, err := xml.Marshal(&doc{When: want})
	require.NoError(t, err)
	assert.Contains(t, string(out), "<when>2026-07-30T12:00:00Z</when>")

	var got doc
	require.NoError(t, xml.Unmarshal(out, &got))
	assert.True(t, want.Equal(got.When.Time))
}

func TestTimeUnmarshalAcceptsFractionalSeconds(t *testing.T) {
	type doc struct {
		XMLName xml.Name `xml:"t"`
		When    Time     `xml:"when"`
	}

	var got doc
	require.NoError(t, xml.Unmarshal([]byte(`<t><when>2026-07-30T12:00:00.5Z</when></t>`), &got))
	assert.Equal(t, 2026, got.When.Year())
}

func TestRawXMLRoundTrip(t *testing.T) {
	type doc struct {
		XMLName xml.Name `xml:"t"`
		Body    RawXML   `xml:"body"`
	}

	src := &doc{Body: RawXML(`<foo xmlns="urn:x"><bar>1</bar></foo>`)}
	out, err := xml.Marshal(src)
	require.NoError(t, err)

	var got doc
	require.NoError(t, xml.Unmarshal(out, &got))
	assert.Equal(t, src.Body, got.Body)
}

func TestMarshalEnvelopeNoExtension(t *testing.T) {
	type cmd struct {
		XMLName xml.Name `xml:"check"`
	}

	out, err := marshalEnvelope(&cmd{}, nil, false, "ABC-123")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `xmlns="`+NSEPP+`"`)
	assert.Contains(t, s, "<command>")
	assert.Contains(t, s, "<check></check>")
	assert.NotContains(t, s, "<extension>")
	assert.Contains(t, s, "<clTRID>ABC-123</clTRID>")
}

func TestMarshalEnvelopeWithExtension(t *testing.T) {
	type cmd struct {
		XMLName xml.Name `xml:"check"`
	}
	type ext struct {
		XMLName xml.Name `xml:"urn:x ext"`
		Value   string   `xml:"value"`
	}

	out, err := marshalEnvelope(&cmd{}, &ext{Value: "v"}, true, "ABC-123")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<extension>")
	assert.Contains(t, s, "<value>v</value>")
}

func TestMarshalEnvelopeEscapesClTRID(t *testing.T) {
	type cmd struct {
		XMLName xml.Name `xml:"check"`
	}
	out, err := marshalEnvelope(&cmd{}, nil, false, "A&B")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<clTRID>A&amp;B</clTRID>")
}

func TestYearsMonths(t *testing.T) {
	assert.Equal(t, Period{Value: 2, Unit: "y"}, Years(2))
	assert.Equal(t, Period{Value: 6, Unit: "m"}, Months(6))
}
