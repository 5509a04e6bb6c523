package channel

import (
	"github.com/notorious-go/channel/ordering/partialorder"
)

// DrainOrdered repeatedly receives from c and hands each value to process,
// running up to limit invocations of process concurrently. Values that map
// to the same key via keyFn are processed in the order they were received;
// values with different keys may run concurrently with one another. It
// returns once c is closed and drained.
//
// This gives a select-driven fan-in (such as a Balancer's output channels)
// a way to process what it receives out of strict arrival order without
// losing the per-key ordering guarantee that a caller may depend on -- for
// example, never processing two updates for the same entity out of order
// even though they arrived on a channel shared with updates for other
// entities.
func DrainOrdered[T any, K comparable](c Channel[T], keyFn func(T) K, limit int, process func(T)) {
	var topic partialorder.Topic[K]
	topic.SetLimit(limit)
	defer topic.Wait()

	for {
		v, err := c.Recv()
		if err != nil {
			return
		}
		topic.Go(keyFn(v), func() { process(v) })
	}
}
