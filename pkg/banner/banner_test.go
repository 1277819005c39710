package banner

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualTimer captures re-arm scheduling so tests control time explicitly.
type manualTimer struct {
	mu        sync.Mutex
	scheduled int
	stopped   int
	delay     time.Duration
	fn        func()
}

func (m *manualTimer) schedule(d time.Duration, fn func()) StopFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled++
	m.delay = d
	m.fn = fn
	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stopped++
		armed := m.fn != nil
		m.fn = nil
		return armed
	}
}

// fire runs the pending callback as if the cooldown elapsed.
func (m *manualTimer) fire(t *testing.T) {
	t.Helper()
	m.mu.Lock()
	fn := m.fn
	m.fn = nil
	m.mu.Unlock()
	require.NotNil(t, fn, "no re-arm callback pending")
	fn()
}

func (m *manualTimer) pending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fn != nil
}

func (m *manualTimer) scheduledCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduled
}

func (m *manualTimer) stoppedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// geometry returns a sample on the reference page used throughout these
// tests: a 3000px document in an 800px viewport.
func geometry(scrollY float64) Viewport {
	return Viewport{ScrollY: scrollY, DocumentHeight: 3000, ViewportHeight: 800}
}

func TestNewDefaults(t *testing.T) {
	c := New(Config{})

	assert.Equal(t, 600.0, c.revealThreshold)
	assert.Equal(t, 500.0, c.exclusionZone)
	assert.Equal(t, 60*time.Second, c.cooldown)
	assert.False(t, c.Visible())
	assert.False(t, c.Dismissed())
}

func TestOnScrollVisibility(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
		want bool
	}{
		{name: "top of page", v: geometry(0), want: false},
		{name: "at reveal threshold", v: geometry(600), want: false},
		{name: "just past reveal threshold", v: geometry(601), want: true},
		{name: "mid page", v: geometry(700), want: true},
		{name: "exactly at exclusion margin", v: geometry(1700), want: false},
		{name: "just outside exclusion zone", v: geometry(1699), want: true},
		{name: "deep in exclusion zone", v: geometry(2600), want: false},
		{name: "negative scroll clamped", v: geometry(-50), want: false},
		{name: "nan scroll clamped", v: geometry(math.NaN()), want: false},
		{
			name: "nan document height clamped",
			v:    Viewport{ScrollY: 700, DocumentHeight: math.NaN(), ViewportHeight: 800},
			want: false,
		},
		{
			name: "infinite document height clamped",
			v:    Viewport{ScrollY: 700, DocumentHeight: math.Inf(1), ViewportHeight: 800},
			want: false,
		},
		{
			name: "negative viewport height clamped",
			v:    Viewport{ScrollY: 700, DocumentHeight: 3000, ViewportHeight: -800},
			want: true,
		},
		{
			name: "short page never reveals",
			v:    Viewport{ScrollY: 601, DocumentHeight: 1000, ViewportHeight: 800},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Config{Timer: (&manualTimer{}).schedule})

			visible, _ := c.OnScroll(tt.v)

			assert.Equal(t, tt.want, visible)
			assert.Equal(t, tt.want, c.Visible())
		})
	}
}

func TestOnScrollIdempotent(t *testing.T) {
	c := New(Config{Timer: (&manualTimer{}).schedule})

	visible, changed := c.OnScroll(geometry(700))
	require.True(t, visible)
	require.True(t, changed)

	visible, changed = c.OnScroll(geometry(700))
	assert.True(t, visible)
	assert.False(t, changed, "identical sample must not report a transition")
}

func TestOnScrollWhileDismissed(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	visible, _ := c.OnScroll(geometry(700))
	require.True(t, visible)

	c.Dismiss()

	visible, changed := c.OnScroll(geometry(700))
	assert.False(t, visible, "qualifying scroll must not override a dismissal")
	assert.False(t, changed)
}

func TestDismissHidesImmediately(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	visible, _ := c.OnScroll(geometry(700))
	require.True(t, visible)

	c.Dismiss()

	assert.False(t, c.Visible())
	assert.True(t, c.Dismissed())
	assert.Equal(t, 1, mt.scheduledCount())
	assert.Equal(t, 60000*time.Millisecond, mt.delay)
}

func TestDismissRepeatedArmsSingleCooldown(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	c.OnScroll(geometry(700))
	c.Dismiss()
	c.Dismiss()
	c.Dismiss()

	require.Equal(t, 1, mt.scheduledCount(), "repeat dismissals must not stack timers")

	mt.fire(t)

	assert.False(t, c.Dismissed())
	assert.False(t, mt.pending(), "exactly one re-arm per dismissal")

	// A fresh dismissal after re-arming starts a new cooldown.
	c.OnScroll(geometry(700))
	c.Dismiss()
	assert.Equal(t, 2, mt.scheduledCount())
}

func TestDismissRearmRequiresNextScroll(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	c.OnScroll(geometry(700))
	c.Dismiss()
	mt.fire(t)

	// Re-arming clears the dismissal but never shows the banner by itself.
	assert.False(t, c.Dismissed())
	assert.False(t, c.Visible())

	visible, changed := c.OnScroll(geometry(700))
	assert.True(t, visible)
	assert.True(t, changed)
}

func TestScrollWalkthrough(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	visible, changed := c.OnScroll(geometry(0))
	assert.False(t, visible)
	assert.False(t, changed)

	visible, changed = c.OnScroll(geometry(700))
	assert.True(t, visible)
	assert.True(t, changed)

	// 3000 - 800 - 2600 = -400: within 500px of the end.
	visible, changed = c.OnScroll(geometry(2600))
	assert.False(t, visible)
	assert.True(t, changed)

	visible, _ = c.OnScroll(geometry(700))
	require.True(t, visible)

	c.Dismiss()
	assert.False(t, c.Visible())
	require.Equal(t, 60*time.Second, mt.delay)

	// One tick shy of the cooldown the dismissal still holds; once the timer
	// fires the controller is re-armed.
	assert.True(t, c.Dismissed())
	mt.fire(t)
	assert.False(t, c.Dismissed())

	visible, _ = c.OnScroll(geometry(700))
	assert.True(t, visible)
}

func TestCooldownWallClock(t *testing.T) {
	c := New(Config{Cooldown: 25 * time.Millisecond})

	visible, _ := c.OnScroll(geometry(700))
	require.True(t, visible)

	c.Dismiss()
	assert.True(t, c.Dismissed())

	assert.Eventually(t, func() bool { return !c.Dismissed() }, time.Second, 5*time.Millisecond)

	visible, _ = c.OnScroll(geometry(700))
	assert.True(t, visible)
}

func TestConfigOverrides(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{
		RevealThreshold: 100,
		ExclusionZone:   50,
		Cooldown:        5 * time.Minute,
		Timer:           mt.schedule,
	})

	visible, _ := c.OnScroll(Viewport{ScrollY: 101, DocumentHeight: 1000, ViewportHeight: 200})
	assert.True(t, visible)

	c.Dismiss()
	assert.Equal(t, 5*time.Minute, mt.delay)
}

func TestCloseCancelsPendingCooldown(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	c.OnScroll(geometry(700))
	c.Dismiss()
	c.Close()

	assert.Equal(t, 1, mt.stoppedCount())
	assert.False(t, mt.pending())

	// All operations are inert after teardown.
	visible, changed := c.OnScroll(geometry(700))
	assert.False(t, visible)
	assert.False(t, changed)

	c.Dismiss()
	assert.Equal(t, 1, mt.scheduledCount())
}

func TestCloseRacingRearmDoesNotMutate(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	c.OnScroll(geometry(700))
	c.Dismiss()

	// The timer has already handed the callback to its goroutine when Close
	// runs; late delivery must not resurrect the controller.
	mt.mu.Lock()
	fn := mt.fn
	mt.mu.Unlock()
	require.NotNil(t, fn)

	c.Close()
	fn()

	assert.True(t, c.Dismissed(), "late re-arm must not mutate a closed controller")
	assert.False(t, c.Visible())
}

func TestCloseIdempotent(t *testing.T) {
	mt := &manualTimer{}
	c := New(Config{Timer: mt.schedule})

	c.OnScroll(geometry(700))
	c.Dismiss()
	c.Close()
	c.Close()

	assert.Equal(t, 1, mt.stoppedCount())
}
