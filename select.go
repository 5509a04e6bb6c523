package channel

import (
	"math/rand/v2"
	"time"

	"github.com/notorious-go/channel/internal/deadline"
	"github.com/notorious-go/channel/semaphore"
)

// Select waits on candidates, chosen fairly among whichever are ready, and
// proceeds with exactly one. It blocks indefinitely if none are ready yet.
// It returns true once an operation has completed; it returns false as soon
// as its re-scan reaches a candidate whose channel is closed, even if another
// candidate's channel is still open -- it never raises ErrClosed itself.
func Select(first Selector, rest ...Selector) bool {
	return runSelect(deadline.Unlimited(), first, rest...)
}

// TrySelect attempts candidates without blocking. It returns true iff one
// completed immediately.
func TrySelect(first Selector, rest ...Selector) bool {
	return runSelect(deadline.New(0), first, rest...)
}

// TrySelectTimeout waits on candidates for at most timeout. Forever blocks
// indefinitely, like Select; a timeout of 0 behaves like TrySelect.
func TrySelectTimeout(timeout time.Duration, first Selector, rest ...Selector) bool {
	return runSelect(deadlineFor(timeout), first, rest...)
}

// runSelect implements the select algorithm: shuffle the candidates for
// fairness, register the shared notification token with each candidate
// (trying any that decline registration immediately), then loop re-scanning
// and waiting on the token until one candidate fires, a candidate is
// observed closed, or the deadline elapses.
func runSelect(d deadline.Deadline, first Selector, rest ...Selector) bool {
	candidates := make([]Selector, 0, 1+len(rest))
	candidates = append(candidates, first)
	candidates = append(candidates, rest...)
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	tok := semaphore.NewCounter(0)

	registered := make([]bool, len(candidates))
	deregisterAll := func() {
		for i, c := range candidates {
			if registered[i] {
				c.unregister(tok)
				registered[i] = false
			}
		}
	}

	// Registration + fast path: register each candidate's token in turn.
	// A candidate that is already satisfiable or closed declines
	// registration; try it immediately in that case.
	for i, c := range candidates {
		if c.register(tok) {
			registered[i] = true
			continue
		}
		if c.attempt() {
			deregisterAll()
			return true
		}
		// Declined registration without firing means the channel was
		// closed, or another goroutine took the operation first; keep
		// scanning the remaining candidates for the fast path before
		// falling through to the wait loop.
	}

	for {
		switch scanOnce(candidates) {
		case scanFired:
			deregisterAll()
			return true
		case scanClosed:
			deregisterAll()
			return false
		}
		if !tok.AcquireDeadline(d) {
			deregisterAll()
			return false
		}
	}
}

type scanResult int

const (
	scanNoProgress scanResult = iota
	scanFired
	scanClosed
)

// scanOnce re-scans every candidate once, in order. The first candidate
// found AVAILABLE is attempted immediately; the first candidate found
// CLOSED, if none has fired yet, ends the whole select with a failure --
// this mirrors the source's per-candidate short-circuit rather than waiting
// for every candidate to be checked, so a select mixing an open and a closed
// channel fails as soon as the closed one is reached in scan order.
func scanOnce(candidates []Selector) scanResult {
	for _, c := range candidates {
		switch c.status() {
		case statusAvailable:
			if c.attempt() {
				return scanFired
			}
		case statusClosed:
			return scanClosed
		}
	}
	return scanNoProgress
}
