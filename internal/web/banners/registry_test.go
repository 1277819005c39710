package banners

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// testClock is a settable clock for registry tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestAcquireReturnsSameController(t *testing.T) {
	r := New(Config{})

	a := r.Acquire("viewer-a")
	b := r.Acquire("viewer-b")

	assert.Same(t, a, r.Acquire("viewer-a"))
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, r.Len())
}

func TestSweepDropsOnlyIdleControllers(t *testing.T) {
	clock := newTestClock()
	r := New(Config{IdleTTL: 30 * time.Minute, Now: clock.Now})

	r.Acquire("idle")
	r.Acquire("active")

	clock.Advance(20 * time.Minute)
	r.Acquire("active")

	clock.Advance(11 * time.Minute)
	// "idle" was last seen 31m ago, "active" 11m ago.
	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())

	// A swept viewer who comes back starts over with a fresh controller.
	fresh := r.Acquire("idle")
	require.NotNil(t, fresh)
	assert.Equal(t, 2, r.Len())
}

func TestSweepCancelsPendingCooldown(t *testing.T) {
	clock := newTestClock()
	var stops int
	timer := func(d time.Duration, fn func()) banner.StopFunc {
		return func() bool {
			stops++
			return true
		}
	}

	r := New(Config{
		Banner:  banner.Config{Timer: timer},
		IdleTTL: time.Minute,
		Now:     clock.Now,
	})

	ctrl := r.Acquire("viewer")
	ctrl.Dismiss()

	clock.Advance(2 * time.Minute)
	require.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, stops, "sweeping should stop the cooldown timer")
}

func TestCloseAll(t *testing.T) {
	r := New(Config{})
	r.Acquire("a")
	r.Acquire("b")

	r.CloseAll()
	assert.Equal(t, 0, r.Len())
}

func TestRunSweepsUntilCancelled(t *testing.T) {
	clock := newTestClock()
	r := New(Config{
		IdleTTL:       time.Minute,
		SweepInterval: 5 * time.Millisecond,
		Now:           clock.Now,
	})

	r.Acquire("viewer")
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)

	// Anything acquired after the sweep is closed out on shutdown.
	r.Acquire("late")
	cancel()

	require.NoError(t, <-done)
	assert.Equal(t, 0, r.Len())
}
