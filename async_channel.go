package channel

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/notorious-go/channel/internal/deadline"
	"github.com/notorious-go/channel/semaphore"
)

// asyncChannel is a bounded, buffered FIFO channel: Send blocks only while
// the buffer is full, Recv only while it is empty.
type asyncChannel[T any] struct {
	id string

	mu        sync.Mutex
	condRead  *sync.Cond
	condWrite *sync.Cond

	closed  bool
	readers int
	writers int

	queue    []T
	capacity int

	readWaiters  waiters
	writeWaiters waiters
}

func newAsyncChannel[T any](capacity int) *asyncChannel[T] {
	c := &asyncChannel[T]{
		capacity: capacity,
		id:       uuid.NewString(),
	}
	c.condRead = sync.NewCond(&c.mu)
	c.condWrite = sync.NewCond(&c.mu)
	return c
}

func (c *asyncChannel[T]) hasMessagesLocked() bool { return len(c.queue) > 0 }
func (c *asyncChannel[T]) hasCapacityLocked() bool { return len(c.queue) < c.capacity }

func (c *asyncChannel[T]) notifyReadersLocked() { notify(c.condRead, c.readers, &c.readWaiters) }
func (c *asyncChannel[T]) notifyWritersLocked() { notify(c.condWrite, c.writers, &c.writeWaiters) }

func (c *asyncChannel[T]) Send(v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	c.writers++
	defer func() { c.writers-- }()

	for !c.hasCapacityLocked() && !c.closed {
		c.condWrite.Wait()
	}
	if c.closed {
		logDebug("send on buffered channel observed close after waking", func(b *builder) *builder {
			return b.Str("channel", c.id)
		})
		return ErrClosed
	}
	c.queue = append(c.queue, v)
	c.notifyReadersLocked()
	return nil
}

func (c *asyncChannel[T]) TrySend(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trySendLocked(v)
}

func (c *asyncChannel[T]) trySendLocked(v T) bool {
	if c.closed || !c.hasCapacityLocked() {
		return false
	}
	c.queue = append(c.queue, v)
	c.notifyReadersLocked()
	return true
}

func (c *asyncChannel[T]) TrySendTimeout(v T, timeout time.Duration) bool {
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
	if c.closed {
		return false
	}
	c.queue = append(c.queue, v)
	c.notifyReadersLocked()
	return true
}

func (c *asyncChannel[T]) Recv() (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.readers++
	defer func() { c.readers-- }()

	for !c.hasMessagesLocked() && !c.closed {
		c.condRead.Wait()
	}
	if !c.hasMessagesLocked() && c.closed {
		var zero T
		return zero, ErrClosed
	}
	v := c.queue[0]
	c.queue = c.queue[1:]
	c.notifyWritersLocked()
	return v, nil
}

func (c *asyncChannel[T]) TryRecv() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tryRecvLocked()
}

func (c *asyncChannel[T]) tryRecvLocked() (T, bool) {
	if !c.hasMessagesLocked() {
		var zero T
		return zero, false
	}
	v := c.queue[0]
	c.queue = c.queue[1:]
	c.notifyWritersLocked()
	return v, true
}

func (c *asyncChannel[T]) TryRecvTimeout(timeout time.Duration) (T, bool) {
	d := deadlineFor(timeout)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.readers++
	defer func() { c.readers-- }()

	for !c.hasMessagesLocked() && !c.closed {
		if !d.Await(c.condRead) {
			var zero T
			return zero, false
		}
	}
	return c.tryRecvLocked()
}

func (c *asyncChannel[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	notifyAll(c.condRead, &c.readWaiters)
	notifyAll(c.condWrite, &c.writeWaiters)
}

func (c *asyncChannel[T]) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed && !c.hasMessagesLocked()
}

func (c *asyncChannel[T]) ForEach(f func(T)) {
	for {
		v, err := c.Recv()
		if err != nil {
			return
		}
		f(v)
	}
}

func (c *asyncChannel[T]) ForNew(f func(T)) {
	if v, ok := c.TryRecv(); ok {
		f(v)
	}
}

func (c *asyncChannel[T]) Sender(v T, action func()) Selector {
	return &senderSelector[T]{ch: c, value: v, action: action}
}

func (c *asyncChannel[T]) Receiver(action func(T)) Selector {
	return &receiverSelector[T]{ch: c, action: action}
}

func (c *asyncChannel[T]) hasMessagesStatus() status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return statusOf(c.hasMessagesLocked(), c.closed && !c.hasMessagesLocked())
}

func (c *asyncChannel[T]) hasFreeCapacityStatus() status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return statusOf(c.hasCapacityLocked(), c.closed)
}

func (c *asyncChannel[T]) registerWriterWaiter(tok *semaphore.Counter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registerWaiter(c.closed, c.hasCapacityLocked(), &c.writeWaiters, tok)
}

func (c *asyncChannel[T]) unregisterWriterWaiter(tok *semaphore.Counter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeWaiters.Remove(tok)
}

func (c *asyncChannel[T]) registerReaderWaiter(tok *semaphore.Counter) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registerWaiter(c.closed, c.hasMessagesLocked(), &c.readWaiters, tok)
}

func (c *asyncChannel[T]) unregisterReaderWaiter(tok *semaphore.Counter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readWaiters.Remove(tok)
}

func (c *asyncChannel[T]) trySendInternal(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trySendLocked(v)
}

func (c *asyncChannel[T]) tryRecvInternal() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tryRecvLocked()
}
