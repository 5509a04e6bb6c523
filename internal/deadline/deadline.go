// Package deadline encapsulates the bounded-or-unbounded condition wait used
// throughout the channel package: every blocking try variant, and the select
// engine's own token wait, funnel through a Deadline rather than re-deriving
// timer arithmetic at each call site.
package deadline

import (
	"sync"
	"time"
)

// Deadline is an optional absolute point in time, computed once at
// construction, against which a condition-variable wait can be bounded.
//
// The zero Deadline is exhausted: Await on it returns false without waiting.
// Use Unlimited for a Deadline that never expires, or New for one bounded by
// a budget measured from the moment New is called.
type Deadline struct {
	unlimited bool
	deadline  time.Time
	bounded   bool
}

// Unlimited returns a Deadline that waits unconditionally.
func Unlimited() Deadline {
	return Deadline{unlimited: true}
}

// New returns a Deadline bounded by budget, measured from now. A zero or
// negative budget is already exhausted: the first Await returns false
// without waiting.
func New(budget time.Duration) Deadline {
	if budget <= 0 {
		return Deadline{}
	}
	return Deadline{bounded: true, deadline: time.Now().Add(budget)}
}

// Await waits on cond, which the caller must already hold locked, honouring
// this Deadline's budget. It returns false if the deadline has elapsed,
// either already or while waiting; it returns true if cond was (or may have
// been) signalled before the deadline.
//
// Await never re-checks the caller's predicate; spurious and deadline-driven
// wake-ups look identical to a real signal, so callers must loop around
// Await themselves, exactly as they would around a raw cond.Wait().
func (d Deadline) Await(cond *sync.Cond) bool {
	if d.unlimited {
		cond.Wait()
		return true
	}
	if !d.bounded {
		return false
	}
	remaining := time.Until(d.deadline)
	if remaining <= 0 {
		return false
	}
	timer := time.AfterFunc(remaining, cond.Broadcast)
	defer timer.Stop()
	cond.Wait()
	return time.Now().Before(d.deadline)
}
