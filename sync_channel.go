package channel

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/notorious-go/channel/semaphore"
)

// syncChannel is a rendezvous channel: a single-slot hand-off with no
// buffer. A value deposited by Send is not considered accepted until a Recv
// takes it; Close blocks until any value deposited before it was called has
// been consumed.
type syncChannel[T any] struct {
	id string

	mu        sync.Mutex
	condRead  *sync.Cond
	condWrite *sync.Cond

	closed  bool
	readers int
	writers int

	present bool
	value   T

	readWaiters  waiters
	writeWaiters waiters
}

func newSyncChannel[T any]() *syncChannel[T] {
	c := &syncChannel[T]{id: uuid.NewString()}
	c.condRead = sync.NewCond(&c.mu)
	c.condWrite = sync.NewCond(&c.mu)
	return c
}

func (c *syncChannel[T]) hasMessagesLocked() bool { return c.present }

// hasCapacityLocked is the decision that distinguishes a rendezvous channel
// from a 1-slot buffered one: a producer may deposit only if a receiver is
// visibly present, either already parked in Recv or registered via select.
func (c *syncChannel[T]) hasCapacityLocked() bool {
	return !c.present && (c.readers > 0 || !c.readWaiters.IsEmpty())
}

func (c *syncChannel[T]) notifyReadersLocked() { notify(c.condRead, c.readers, &c.readWaiters) }
func (c *syncChannel[T]) notifyWritersLocked() { notify(c.condWrite, c.writers, &c.writeWaiters) }

func (c *syncChannel[T]) Send(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.writers++
	defer func() { c.writers-- }()

	for c.present && !c.closed {
		c.condWrite.Wait()
	}
	if c.closed {
		logDebug("send on rendezvous channel observed close before deposit", func(b *builder) *builder {
			return b.Str("channel", c.id)
		})
		return ErrClosed
	}
	c.value = v
	c.present = true
	c.notifyReadersLocked()

	for c.present && !c.closed {
		c.condWrite.Wait()
	}
	c.notifyWritersLocked()
	return nil
}

func (c *syncChannel[T]) TrySend(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trySendLocked(v)
}

func (c *syncChannel[T]) trySendLocked(v T) bool {
	if c.closed || !c.hasCapacityLocked() {
		return false
	}
	c.value = v
	c.present = true
	c.notifyReadersLocked()
	return true
}

func (c *syncChannel[T]) TrySendTimeout(v T, timeout time.Duration) bool {
	d := deadlineFor(timeout)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	c.writers++
	defer func() { c.writers-- }()

	for !c.hasCapacityLocked() && !c.closed {
		if !d.Await(c.condWrite) {
			return false
		}
	}
	return c.trySendLocked(v)
}

func (c *syncChannel[T]) Recv() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.readers++
	defer func() { c.readers-- }()

	if !c.closed && !c.present {
		c.notifyWritersLocked()
	}
	for !c.closed && !c.present {
		c.condRead.Wait()
	}
	if c.closed && !c.present {
		var zero T
		return zero, ErrClosed
	}
	v := c.take()
	c.notifyWritersLocked()
	return v, nil
}

func (c *syncChannel[T]) take() T {
	v := c.value
	var zero T
	c.value, c.present = zero, false
	return v
}

func (c *syncChannel[T]) TryRecv() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tryRecvLocked()
}

func (c *syncChannel[T]) tryRecvLocked() (T, bool) {
	if !c.present {
		var zero T
		return zero, false
	}
	v := c.take()
	c.notifyWritersLocked()
	return v, true
}

func (c *syncChannel[T]) TryRecvTimeout(timeout time.Duration) (T, bool) {
	d := deadlineFor(timeout)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.readers++
	defer func() { c.readers-- }()

	if !c.closed && !c.present {
		c.notifyWritersLocked()
	}
	for !c.closed && !c.present {
		if !d.Await(c.condRead) {
			var zero T
			return zero, false
		}
	}
	return c.tryRecvLocked()
}

// Close flips closed, wakes every direct waiter and select token, then --
// because this is a rendezvous channel -- blocks until any value deposited
// before Close was called has actually been received. This guarantees that
// once Close returns, no sender that started before it can have its value
// silently vanish.
func (c *syncChannel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	notifyAll(c.condRead, &c.readWaiters)
	notifyAll(c.condWrite, &c.writeWaiters)

	c.writers++
	for c.present {
		c.condWrite.Wait()
	}
	c.writers--
}

func (c *syncChannel[T]) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed && !c.present
}

func (c *syncChannel[T]) ForEach(f func(T)) {
	for {
		v, err := c.Recv()
		if err != nil {
			return
		}
		f(v)
	}
}

func (c *syncChannel[T]) ForNew(f func(T)) {
	if v, ok := c.TryRecv(); ok {
		f(v)
	}
}

func (c *syncChannel[T]) Sender(v T, action func()) Selector {
	return &senderSelector[T]{ch: c, value: v, action: action}
}

func (c *syncChannel[T]) Receiver(action func(T)) Selector {
	return &receiverSelector[T]{ch: c, action: action}
}

func (c *syncChannel[T]) hasMessagesStatus() status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return statusOf(c.present, c.closed && !c.present)
}

func (c *syncChannel[T]) hasFreeCapacityStatus() status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return statusOf(c.hasCapacityLocked(), c.closed)
}

func (c *syncChannel[T]) registerWriterWaiter(tok *semaphore.Counter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registerWaiter(c.closed, c.hasCapacityLocked(), &c.writeWaiters, tok)
}

func (c *syncChannel[T]) unregisterWriterWaiter(tok *semaphore.Counter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeWaiters.Remove(tok)
}

func (c *syncChannel[T]) registerReaderWaiter(tok *semaphore.Counter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registerWaiter(c.closed, c.present, &c.readWaiters, tok)
}

func (c *syncChannel[T]) unregisterReaderWaiter(tok *semaphore.Counter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readWaiters.Remove(tok)
}

func (c *syncChannel[T]) trySendInternal(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trySendLocked(v)
}

func (c *syncChannel[T]) tryRecvInternal() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tryRecvLocked()
}
