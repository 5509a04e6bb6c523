package channel

import "github.com/notorious-go/channel/semaphore"

// Selector represents one candidate operation -- a send bound to a value, or
// a recv -- bound to a channel and an after-action, for use with Select,
// TrySelect, and TrySelectTimeout. A Selector is constructed by a Channel's
// Sender or Receiver method and is meant to be consumed by exactly one
// select call; reusing one across multiple select calls is safe but gives
// it no special treatment -- each call registers and deregisters it afresh.
//
// Selector deliberately carries no type parameter: the element type is
// captured inside the concrete sender/receiver value at construction time,
// the same way Channel.Sender and Channel.Receiver erase it from their
// return type. This is what lets a single Select call mix candidates drawn
// from channels of unrelated element types.
type Selector interface {
	// register attempts to register tok as a waiter for this candidate's
	// operation, returning false without registering if the channel is
	// closed or the operation is already satisfiable.
	register(tok *semaphore.Counter) bool

	// unregister removes tok from whatever waiter queue register may
	// have added it to. Idempotent; safe even if tok was never
	// registered by this candidate.
	unregister(tok *semaphore.Counter)

	// status reports whether this candidate's operation can currently
	// proceed without blocking.
	status() status

	// attempt performs the operation once, non-blockingly. On success
	// it runs the after-action and returns true.
	attempt() bool
}

type channelInternals[T any] interface {
	registerWriterWaiter(tok *semaphore.Counter) bool
	unregisterWriterWaiter(tok *semaphore.Counter)
	registerReaderWaiter(tok *semaphore.Counter) bool
	unregisterReaderWaiter(tok *semaphore.Counter)
	hasMessagesStatus() status
	hasFreeCapacityStatus() status
	trySendInternal(v T) bool
	tryRecvInternal() (T, bool)
}

type senderSelector[T any] struct {
	ch     channelInternals[T]
	value  T
	action func()
}

func (s *senderSelector[T]) register(tok *semaphore.Counter) bool { return s.ch.registerWriterWaiter(tok) }
func (s *senderSelector[T]) unregister(tok *semaphore.Counter)    { s.ch.unregisterWriterWaiter(tok) }
func (s *senderSelector[T]) status() status                       { return s.ch.hasFreeCapacityStatus() }

func (s *senderSelector[T]) attempt() bool {
	if !s.ch.trySendInternal(s.value) {
		return false
	}
	if s.action != nil {
		s.action()
	}
	return true
}

type receiverSelector[T any] struct {
	ch     channelInternals[T]
	action func(T)
}

func (s *receiverSelector[T]) register(tok *semaphore.Counter) bool { return s.ch.registerReaderWaiter(tok) }
func (s *receiverSelector[T]) unregister(tok *semaphore.Counter)    { s.ch.unregisterReaderWaiter(tok) }
func (s *receiverSelector[T]) status() status                       { return s.ch.hasMessagesStatus() }

func (s *receiverSelector[T]) attempt() bool {
	v, ok := s.ch.tryRecvInternal()
	if !ok {
		return false
	}
	if s.action != nil {
		s.action(v)
	}
	return true
}
