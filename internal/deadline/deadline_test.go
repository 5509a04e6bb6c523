package deadline_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/notorious-go/channel/internal/deadline"
)

func TestZeroBudgetReturnsFalseImmediately(t *testing.T) {
	var mu sync.Mutex
	cond := sync.NewCond(&mu)

	mu.Lock()
	defer mu.Unlock()

	start := time.Now()
	ok := deadline.New(0).Await(cond)
	require.False(t, ok)
	require.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestUnlimitedWaitsForSignal(t *testing.T) {
	var mu sync.Mutex
	cond := sync.NewCond(&mu)

	go func() {
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		cond.Signal()
		mu.Unlock()
	}()

	mu.Lock()
	defer mu.Unlock()
	ok := deadline.Unlimited().Await(cond)
	require.True(t, ok)
}

func TestFiniteBudgetExpires(t *testing.T) {
	var mu sync.Mutex
	cond := sync.NewCond(&mu)

	mu.Lock()
	defer mu.Unlock()

	start := time.Now()
	ok := deadline.New(30 * time.Millisecond).Await(cond)
	require.False(t, ok)
	require.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
}

func TestFiniteBudgetWakesOnSignalBeforeExpiry(t *testing.T) {
	var mu sync.Mutex
	cond := sync.NewCond(&mu)

	go func() {
		time.Sleep(10 * time.Millisecond)
		mu.Lock()
		cond.Signal()
		mu.Unlock()
	}()

	mu.Lock()
	defer mu.Unlock()
	ok := deadline.New(2 * time.Second).Await(cond)
	require.True(t, ok)
}
