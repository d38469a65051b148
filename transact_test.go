// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"testing"
	"time"

	"github.com/bassosimone/eppx/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkResponseXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>Command completed successfully</msg></result>
    <resData>
      <chkData xmlns="urn:ietf:params:xml:ns:domain-1.0">
        <cd><name avail="1">example.com</name></cd>
      </chkData>
    </resData>
    <trID><clTRID>ABC-123</clTRID><svTRID>SRV-001</svTRID></trID>
  </response>
</epp>`

const failedResponseXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="2201"><msg>Authorization error</msg></result>
    <trID><clTRID>ABC-123</clTRID><svTRID>SRV-001</svTRID></trID>
  </response>
</epp>`

const mismatchedTrIDResponseXML = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<epp xmlns="urn:ietf:params:xml:ns:epp-1.0">
  <response>
    <result code="1000"><msg>Command completed successfully</msg></result>
    <trID><clTRID>WRONG-ID</clTRID><svTRID>SRV-001</svTRID></trID>
  </response>
</epp>`

func TestTransactDecodesSuccessResponse(t *testing.T) {
	conn, _ := newTestConn(t, frameOf(checkResponseXML))

	req := &Request[domain.CheckCommand, NoExtension]{
		Command: *domain.NewCheck("example.com"),
		ClTRID:  "ABC-123",
	}
	resp, err := Transact[domain.CheckCommand, NoExtension](context.Background(), conn, req)
	require.NoError(t, err)
	assert.True(t, resp.Success())
	require.NotNil(t, resp.ResData)
	require.Len(t, resp.ResData.Checks, 1)
	assert.True(t, resp.ResData.Checks[0].Name.Available)
	assert.Equal(t, "SRV-001", resp.TrID.SvTRID)
}

func TestTransactSurfacesCommandFailed(t *testing.T) {
	conn, _ := newTestConn(t, frameOf(failedResponseXML))

	req := &Request[domain.CheckCommand, NoExtension]{
		Command: *domain.NewCheck("example.com"),
		ClTRID:  "ABC-123",
	}
	_, err := Transact[domain.CheckCommand, NoExtension](context.Background(), conn, req)
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindCommandFailed, eppErr.Kind)
	assert.Equal(t, 2201, eppErr.Code)
}

func TestTransactDetectsTrIDMismatch(t *testing.T) {
	conn, _ := newTestConn(t, frameOf(mismatchedTrIDResponseXML))

	req := &Request[domain.CheckCommand, NoExtension]{
		Command: *domain.NewCheck("example.com"),
		ClTRID:  "ABC-123",
	}
	_, err := Transact[domain.CheckCommand, NoExtension](context.Background(), conn, req)
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindProtocolDesync, eppErr.Kind)
	assert.True(t, conn.poisoned.Load())
}

func TestTransactFailsFastWhenPoisoned(t *testing.T) {
	conn, _ := newTestConn(t, nil)
	conn.poisoned.Store(true)

	req := &Request[domain.CheckCommand, NoExtension]{
		Command: *domain.NewCheck("example.com"),
		ClTRID:  "ABC-123",
	}
	_, err := Transact[domain.CheckCommand, NoExtension](context.Background(), conn, req)
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindConnectionPoisoned, eppErr.Kind)
}

func TestTransactTimesOutAndPoisons(t *testing.T) {
	conn, tconn := newBlockingTestConn(20 * time.Millisecond)

	req := &Request[domain.CheckCommand, NoExtension]{
		Command: *domain.NewCheck("example.com"),
		ClTRID:  "ABC-123",
	}
	_, err := Transact[domain.CheckCommand, NoExtension](context.Background(), conn, req)
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindTimeout, eppErr.Kind)
	assert.True(t, conn.poisoned.Load())
	assert.True(t, tconn.closed)
}

func TestTransactInterruptedByCallerCancellation(t *testing.T) {
	conn, tconn := newBlockingTestConn(0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	req := &Request[domain.CheckCommand, NoExtension]{
		Command: *domain.NewCheck("example.com"),
		ClTRID:  "ABC-123",
	}
	_, err := Transact[domain.CheckCommand, NoExtension](ctx, conn, req)
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindTimeout, eppErr.Kind)
	assert.True(t, conn.poisoned.Load())
	assert.True(t, tconn.closed)
}
