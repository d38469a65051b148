// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnFuncWrapsAndReadsGreeting(t *testing.T) {
	tconn := newFakeTLSConn(frameOf(sampleGreeting))
	op := NewConnFunc(NewConfig(), DefaultSLogger())

	conn, err := op.Call(context.Background(), tconn)
	require.NoError(t, err)
	require.NotNil(t, conn.Greeting())
	assert.Equal(t, "Example EPP server epp.example.com", conn.Greeting().ServerID)
	assert.Same(t, tconn, conn.Underlying())
}

func TestConnFuncClosesOnBadGreeting(t *testing.T) {
	tconn := newFakeTLSConn([]byte{0x00, 0x00, 0x00, 0x04})
	op := NewConnFunc(NewConfig(), DefaultSLogger())

	_, err := op.Call(context.Background(), tconn)
	require.Error(t, err)
	assert.True(t, tconn.closed)
}
