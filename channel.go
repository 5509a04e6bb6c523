package channel

import "time"

// Forever, passed to TrySendTimeout/TryRecvTimeout/TrySelectTimeout, blocks
// indefinitely -- the distinguished "maximum" timeout value the external
// interface calls for. A timeout of exactly 0 is non-blocking; any positive
// duration bounds the wait.
const Forever time.Duration = -1

// Channel is the common interface implemented by both the rendezvous and
// the buffered channel variants. A Channel is safe for concurrent use by any
// number of goroutines.
type Channel[T any] interface {
	// Send blocks until v is accepted or the channel is closed. It never
	// loses v: v is either taken by a Recv/TryRecv, or Send returns
	// ErrClosed without having handed it to anyone. That includes a Send
	// that was still waiting to place v when the channel was closed: it
	// returns ErrClosed on both channel variants.
	Send(v T) error

	// TrySend attempts to send v without blocking, reporting whether it
	// was accepted.
	TrySend(v T) bool

	// TrySendTimeout attempts to send v, blocking for at most timeout.
	// A timeout of 0 behaves like TrySend; Forever behaves like Send
	// except that it still reports success as a bool rather than an
	// error -- a closed channel simply reports false.
	TrySendTimeout(v T, timeout time.Duration) bool

	// Recv blocks until a value is available or the channel is closed
	// and empty, in which case it returns ErrClosed.
	Recv() (T, error)

	// TryRecv attempts to receive a value without blocking.
	TryRecv() (T, bool)

	// TryRecvTimeout attempts to receive a value, blocking for at most
	// timeout.
	TryRecvTimeout(timeout time.Duration) (T, bool)

	// Close is idempotent. It wakes every direct waiter and releases
	// every registered select token; on a rendezvous channel it then
	// blocks until any value handed off before Close was called has
	// been received.
	Close()

	// IsClosed reports whether the channel is closed and no further
	// value can ever be retrieved from it.
	IsClosed() bool

	// ForEach receives repeatedly and applies f to each value, returning
	// once the channel is closed and drained.
	ForEach(f func(T))

	// ForNew applies f to a value only if one is immediately available,
	// without blocking.
	ForNew(f func(T))

	// Sender constructs a send candidate for use with Select, binding
	// the value to send and an action to run after it is accepted.
	Sender(v T, action func()) Selector

	// Receiver constructs a recv candidate for use with Select, binding
	// an action that receives the value once one is available.
	Receiver(action func(T)) Selector
}
