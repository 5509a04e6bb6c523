package channel

// New creates a rendezvous channel: every send blocks until a receiver is
// ready to take the value directly.
func New[T any]() Channel[T] {
	return newSyncChannel[T]()
}

// NewBuffered creates a channel of the given capacity. A capacity of 0
// yields a rendezvous channel, equivalent to New; a positive capacity yields
// a FIFO-buffered channel that holds up to that many values before a send
// blocks. A negative capacity is rejected with ErrInvalidArgument.
func NewBuffered[T any](capacity int) (Channel[T], error) {
	switch {
	case capacity < 0:
		var zero Channel[T]
		return zero, ErrInvalidArgument
	case capacity == 0:
		return newSyncChannel[T](), nil
	default:
		return newAsyncChannel[T](capacity), nil
	}
}
