// Package channel reproduces CSP-style channels and multi-way select on top
// of ordinary mutexes, condition variables, and counting semaphores, rather
// than on Go's own built-in chan and select.
//
// Two flavours are provided: a rendezvous channel, created with New, whose
// Send blocks until a Recv is ready to take the value directly, and a
// buffered channel, created with NewBuffered, backed by a fixed-capacity
// FIFO queue. Both satisfy the Channel interface.
//
// Select waits on several Selector candidates -- each produced by a
// channel's Sender or Receiver method -- and proceeds with exactly one,
// chosen fairly among whichever are ready:
//
//	a, b := channel.New[int](), channel.New[int]()
//	ok := channel.Select(a.Receiver(func(v int) { ... }), b.Receiver(func(v int) { ... }))
//
// Unlike Go's native select, candidates here are values constructed ahead of
// time and can be built from any mix of channel element types, because a
// Selector closes over its own value and action rather than exposing them to
// the engine.
package channel
