package semaphore

import (
	"fmt"
	"sync"
	"time"

	"github.com/notorious-go/channel/internal/deadline"
)

// Counter is a general counting semaphore built from a mutex and a
// condition variable rather than a buffered channel. Unlike Semaphore, whose
// Acquire/Release pairing models a bounded resource pool, Counter's Release
// is never paired with a prior Acquire: any goroutine may post permits at
// any time, and they accumulate until some other goroutine acquires them.
//
// This makes Counter suitable as a wake-up signal between goroutines that
// don't otherwise share a channel -- seed it with NewCounter(0) and have one
// side block in Acquire while any number of other sides call Release. A
// Release that happens before the matching Acquire is never lost, which is
// the whole point of using a counting semaphore for this rather than a
// condition variable directly.
//
// The nil *Counter is not valid; use NewCounter.
type Counter struct {
	mu      sync.Mutex
	cond    *sync.Cond
	permits int
}

// NewCounter creates a Counter with the given number of permits immediately
// available.
func NewCounter(permits int) *Counter {
	c := &Counter{permits: permits}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// String reports the number of permits currently available.
func (c *Counter) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("Counter(%d)", c.permits)
}

// Acquire blocks until a permit is available, then takes it.
func (c *Counter) Acquire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.permits == 0 {
		c.cond.Wait()
	}
	c.permits--
}

// TryAcquire takes a permit without blocking, reporting whether one was
// available.
func (c *Counter) TryAcquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.permits == 0 {
		return false
	}
	c.permits--
	return true
}

// TryAcquireTimeout blocks for at most timeout waiting for a permit. A zero
// or negative timeout behaves like TryAcquire.
func (c *Counter) TryAcquireTimeout(timeout time.Duration) bool {
	d := deadline.New(timeout)
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.permits == 0 {
		if !d.Await(c.cond) {
			return false
		}
	}
	c.permits--
	return true
}

// AcquireDeadline blocks until a permit is available, honouring the given
// Deadline. It exists so callers already holding a deadline.Deadline -- such
// as the select engine's wait loop -- don't need to re-derive a timeout from
// elapsed time on every re-scan.
func (c *Counter) AcquireDeadline(d deadline.Deadline) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.permits == 0 {
		if !d.Await(c.cond) {
			return false
		}
	}
	c.permits--
	return true
}

// Release posts a permit, waking one blocked Acquire if any is waiting.
// Unlike Semaphore.Release, this never blocks and is never paired with a
// prior Acquire by the same caller.
func (c *Counter) Release() {
	c.mu.Lock()
	c.permits++
	c.mu.Unlock()
	c.cond.Signal()
}

// Len reports the number of permits currently available.
func (c *Counter) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.permits
}
