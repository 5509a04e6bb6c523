package channel

import "errors"

// ErrClosed is returned by Send to a closed channel, by Recv from a closed
// and drained channel, and -- per the consistency policy documented on
// Channel -- by Send discovering closure only after it woke from waiting.
var ErrClosed = errors.New("channel: closed")

// ErrInvalidArgument is returned by NewBuffered for a negative capacity.
var ErrInvalidArgument = errors.New("channel: invalid argument")
