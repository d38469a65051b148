// SPDX-License-Identifier: GPL-3.0-or-later

package eppx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T, initial []byte) (*Conn, *fakeTLSConn) {
	t.Helper()
	tconn := newFakeTLSConn(append(frameOf(sampleGreeting), initial...))
	op := NewConnFunc(NewConfig(), DefaultSLogger())
	conn, err := op.Call(context.Background(), tconn)
	require.NoError(t, err)
	return conn, tconn
}

func TestConnHelloRefreshesGreeting(t *testing.T) {
	conn, _ := newTestConn(t, frameOf(sampleGreeting))

	greeting, err := conn.Hello(context.Background())
	require.NoError(t, err)
	assert.Same(t, greeting, conn.Greeting())
}

func TestConnHelloFailsOnPoisonedConnection(t *testing.T) {
	conn, _ := newTestConn(t, nil)
	conn.poisoned.Store(true)

	_, err := conn.Hello(context.Background())
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindConnectionPoisoned, eppErr.Kind)
}

func TestConnPoisonsOnFatalKind(t *testing.T) {
	conn, _ := newTestConn(t, nil)

	conn.poison(&Error{Op: "ReadFrame", Kind: KindTransportEOF})
	assert.True(t, conn.poisoned.Load())
}

func TestConnDoesNotPoisonOnXMLDecode(t *testing.T) {
	conn, _ := newTestConn(t, nil)

	conn.poison(&Error{Op: "Transact", Kind: KindXMLDecode})
	assert.False(t, conn.poisoned.Load())
}

func TestConnCloseClosesUnderlying(t *testing.T) {
	conn, tconn := newTestConn(t, nil)
	require.NoError(t, conn.Close())
	assert.True(t, tconn.closed)
}

// newBlockingTestConn returns a [*Conn] wrapping a [*blockingTLSConn], built
// by hand rather than via [*ConnFunc] so construction does not itself block
// reading the greeting.
func newBlockingTestConn(timeout time.Duration) (*Conn, *blockingTLSConn) {
	tconn := newBlockingTLSConn()
	framer := &Framer{
		Conn:          tconn,
		ErrClassifier: DefaultErrClassifier,
		Logger:        DefaultSLogger(),
		MaxFrameSize:  DefaultMaxFrameSize,
		TimeNow:       time.Now,
	}
	conn := &Conn{
		conn:          tconn,
		framer:        framer,
		ErrClassifier: DefaultErrClassifier,
		Logger:        DefaultSLogger(),
		Timeout:       timeout,
		TimeNow:       time.Now,
	}
	return conn, tconn
}

func TestConnHelloTimesOutAndPoisons(t *testing.T) {
	conn, tconn := newBlockingTestConn(20 * time.Millisecond)

	_, err := conn.Hello(context.Background())
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindTimeout, eppErr.Kind)
	assert.True(t, conn.poisoned.Load())
	assert.True(t, tconn.closed)
}

func TestConnHelloInterruptedByCallerCancellation(t *testing.T) {
	conn, tconn := newBlockingTestConn(0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := conn.Hello(ctx)
	require.Error(t, err)

	var eppErr *Error
	require.ErrorAs(t, err, &eppErr)
	assert.Equal(t, KindTimeout, eppErr.Kind)
	assert.True(t, conn.poisoned.Load())
	assert.True(t, tconn.closed)
}
