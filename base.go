package channel

import (
	"sync"

	"github.com/notorious-go/channel/internal/waiterqueue"
	"github.com/notorious-go/channel/semaphore"
)

// waiters is the shared notification-token queue type used for both the
// read side and the write side of a channel.
type waiters = waiterqueue.List[*semaphore.Counter]

// notify implements the wake-up policy shared by both channel variants: if
// a thread is parked directly on cond (readers > 0, say), wake exactly one
// of them; otherwise, if a select caller is registered, rotate its token to
// the tail of the queue and release it, giving round-robin fairness among
// select callers contending on the same channel side.
func notify(cond *sync.Cond, directWaiters int, tokens *waiters) {
	if directWaiters > 0 {
		cond.Signal()
		return
	}
	if tok, ok := tokens.RotateHeadAndReturn(); ok {
		tok.Release()
	}
}

// notifyAll wakes every direct waiter and releases every registered select
// token, used by Close to make sure nobody is left parked on a channel that
// just became closed.
func notifyAll(cond *sync.Cond, tokens *waiters) {
	cond.Broadcast()
	tokens.ForEach(func(tok *semaphore.Counter) { tok.Release() })
	tokens.Clear()
}

// registerWaiter implements register_reader_waiter/register_writer_waiter:
// if the channel is closed, or the operation the token is waiting for is
// already satisfiable, it registers nothing and reports false. Otherwise it
// appends tok to the queue and reports true.
func registerWaiter(closed, satisfied bool, tokens *waiters, tok *semaphore.Counter) bool {
	if closed || satisfied {
		return false
	}
	tokens.Append(tok)
	return true
}
