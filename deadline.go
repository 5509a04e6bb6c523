package channel

import (
	"time"

	"github.com/notorious-go/channel/internal/deadline"
)

// deadlineFor translates the public timeout convention -- 0 non-blocking,
// Forever (or any other negative duration) blocking indefinitely, a positive
// duration a bound -- into a deadline.Deadline.
func deadlineFor(timeout time.Duration) deadline.Deadline {
	if timeout < 0 {
		return deadline.Unlimited()
	}
	return deadline.New(timeout)
}
