// Package banner implements the visibility controller behind the sticky
// call-to-action bar: visibility is recomputed from viewport geometry on every
// scroll sample, and an explicit dismissal hides the bar until a one-shot
// cooldown re-arms it.
//
// A Controller is a plain state object with two entry points (OnScroll and
// Dismiss). It performs no rendering, no I/O, and no scheduling beyond the
// single cooldown timer, so it is testable without any browser environment.
package banner

import (
	"math"
	"sync"
	"time"
)

// Tuning defaults. These are presentation constants with no deeper rationale;
// deployments override them through Config.
const (
	DefaultRevealThreshold = 600.0
	DefaultExclusionZone   = 500.0
	DefaultCooldown        = 60 * time.Second
)

// StopFunc cancels a scheduled re-arm callback. It reports whether the
// cancellation happened before the callback ran.
type StopFunc func() bool

// TimerFunc schedules fn to run once after d and returns a StopFunc that
// cancels the pending run. Implementations must not invoke fn synchronously
// from the scheduling call. The default is time.AfterFunc.
type TimerFunc func(d time.Duration, fn func()) StopFunc

// Viewport is one geometry sample from the scrolling environment. Values are
// pixels; negative and non-finite values are treated as 0.
type Viewport struct {
	ScrollY        float64
	DocumentHeight float64
	ViewportHeight float64
}

// Remaining is the scrollable distance left below the current viewport
// position, after clamping. The banner is suppressed once this drops into the
// exclusion zone so it never overlaps the footer.
func (v Viewport) Remaining() float64 {
	return clamp(v.DocumentHeight) - clamp(v.ViewportHeight) - clamp(v.ScrollY)
}

// State is a point-in-time snapshot of a controller.
type State struct {
	Visible   bool
	Dismissed bool
}

// Config tunes a Controller. Zero or negative fields fall back to the package
// defaults, so Config{} yields the stock behavior.
type Config struct {
	// RevealThreshold is the minimum scroll offset before the banner may
	// appear.
	RevealThreshold float64

	// ExclusionZone is the trailing region near the end of the document in
	// which the banner stays hidden regardless of scroll offset.
	ExclusionZone float64

	// Cooldown is how long a dismissal keeps the banner hidden before the
	// controller re-arms.
	Cooldown time.Duration

	// Timer schedules the re-arm callback. Tests inject a manual timer; nil
	// means time.AfterFunc.
	Timer TimerFunc
}

// Controller decides whether one viewer's call-to-action banner is shown.
//
// Each viewer owns exactly one Controller; no state is shared between
// instances. Scroll samples and the timer callback may arrive on different
// goroutines, so the controller serializes all mutations internally. Close
// releases the instance and cancels any pending re-arm.
type Controller struct {
	revealThreshold float64
	exclusionZone   float64
	cooldown        time.Duration
	timer           TimerFunc

	mu        sync.Mutex
	visible   bool
	dismissed bool
	stop      StopFunc
	closed    bool
}

// New creates a Controller in the initial state: hidden, not dismissed.
func New(cfg Config) *Controller {
	if cfg.RevealThreshold <= 0 {
		cfg.RevealThreshold = DefaultRevealThreshold
	}
	if cfg.ExclusionZone <= 0 {
		cfg.ExclusionZone = DefaultExclusionZone
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.Timer == nil {
		cfg.Timer = afterFunc
	}
	return &Controller{
		revealThreshold: cfg.RevealThreshold,
		exclusionZone:   cfg.ExclusionZone,
		cooldown:        cfg.Cooldown,
		timer:           cfg.Timer,
	}
}

// OnScroll recomputes visibility from one geometry sample. The banner is
// visible only when the scroll offset exceeds the reveal threshold, the
// remaining distance to the end of the document exceeds the exclusion zone,
// and the viewer has not dismissed it.
//
// The computation is O(1) and idempotent: identical samples yield identical
// state, and changed reports whether this call flipped visibility, so callers
// can skip redundant repaints. Safe to call at raw scroll frequency;
// throttling upstream is an optimization, not a correctness requirement.
func (c *Controller) OnScroll(v Viewport) (visible, changed bool) {
	scrollY := clamp(v.ScrollY)
	remaining := v.Remaining()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false, false
	}
	next := scrollY > c.revealThreshold && remaining > c.exclusionZone && !c.dismissed
	changed = next != c.visible
	c.visible = next
	return next, changed
}

// Dismiss hides the banner immediately and schedules a single re-arm after
// the cooldown. While a dismissal is pending, further calls are no-ops: the
// running cooldown is never reset, extended, or duplicated. Re-arming only
// clears the dismissed flag; the banner stays hidden until the next scroll
// sample qualifies.
func (c *Controller) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.dismissed {
		return
	}
	c.dismissed = true
	c.visible = false
	c.stop = c.timer(c.cooldown, c.rearm)
}

func (c *Controller) rearm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.dismissed = false
	c.stop = nil
}

// Visible reports whether the banner is currently shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Dismissed reports whether a dismissal cooldown is pending.
func (c *Controller) Dismissed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dismissed
}

// Snapshot returns the current state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Visible: c.visible, Dismissed: c.dismissed}
}

// Close tears the controller down: any pending cooldown is cancelled and all
// further operations become no-ops. A timer callback racing the close never
// mutates state. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.visible = false
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

func afterFunc(d time.Duration, fn func()) StopFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// clamp maps negative and non-finite geometry to 0. A momentarily wrong
// visibility decision is cosmetic, so malformed inputs degrade instead of
// erroring.
func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
