package channel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/notorious-go/channel"
)

func TestRendezvousTrySendFailsWithoutReceiver(t *testing.T) {
	c := channel.New[string]()
	require.False(t, c.TrySend("x"))
}

func TestRendezvousTrySendSucceedsWithParkedReceiver(t *testing.T) {
	c := channel.New[string]()

	recvResult := make(chan string, 1)
	go func() {
		v, err := c.Recv()
		require.NoError(t, err)
		recvResult <- v
	}()

	require.Eventually(t, func() bool {
		return c.TrySend("x")
	}, time.Second, time.Millisecond)

	require.Equal(t, "x", <-recvResult)
}

func TestRendezvousHandoff(t *testing.T) {
	c := channel.New[int]()

	sendDone := make(chan struct{})
	go func() {
		require.NoError(t, c.Send(42))
		close(sendDone)
	}()

	select {
	case <-sendDone:
		t.Fatal("Send returned before a receiver took the value")
	case <-time.After(20 * time.Millisecond):
	}

	v, err := c.Recv()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	select {
	case <-sendDone:
	case <-time.After(time.Second):
		t.Fatal("Send did not return after the value was received")
	}
}

func TestRendezvousCloseWaitsForPendingValue(t *testing.T) {
	c := channel.New[int]()

	recvValue := make(chan int, 1)
	go func() {
		time.Sleep(120 * time.Millisecond)
		v, err := c.Recv()
		require.NoError(t, err)
		recvValue <- v
	}()
	go func() {
		require.NoError(t, c.Send(1))
	}()

	start := time.Now()
	time.Sleep(50 * time.Millisecond)
	c.Close()
	elapsed := time.Since(start)

	require.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
	require.Less(t, elapsed, 2*time.Second)
	require.Equal(t, 1, <-recvValue)
}

func TestRendezvousSendFailsOnClosedChannel(t *testing.T) {
	c := channel.New[int]()
	c.Close()
	err := c.Send(1)
	require.ErrorIs(t, err, channel.ErrClosed)
}

func TestRendezvousRecvFailsOnClosedEmptyChannel(t *testing.T) {
	c := channel.New[int]()
	c.Close()
	_, err := c.Recv()
	require.ErrorIs(t, err, channel.ErrClosed)
}

func TestRendezvousSecondSendFailsWithClosedWhileFirstValueStillPending(t *testing.T) {
	c := channel.New[int]()

	err1Ch := make(chan error, 1)
	go func() {
		err1Ch <- c.Send(1)
	}()

	// Let the first value land in the slot before the second sender arrives.
	time.Sleep(20 * time.Millisecond)

	err2Ch := make(chan error, 1)
	go func() {
		err2Ch <- c.Send(2)
	}()

	// Let the second sender park behind the occupied slot.
	time.Sleep(20 * time.Millisecond)

	closeDone := make(chan struct{})
	go func() {
		c.Close()
		close(closeDone)
	}()

	// Let Close observe the pending value and start waiting for it to drain.
	time.Sleep(20 * time.Millisecond)

	select {
	case err := <-err2Ch:
		require.ErrorIs(t, err, channel.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("second Send never returned after Close")
	}

	v, err := c.Recv()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	select {
	case <-closeDone:
	case <-time.After(time.Second):
		t.Fatal("Close did not return after the pending value was received")
	}

	select {
	case err := <-err1Ch:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("first Send never returned")
	}
}
