// Package banners keeps one banner controller per viewer. Controllers are
// created on first contact, touched on every use, and swept once a viewer has
// been idle long enough, which also cancels any cooldown still pending.
package banners

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fernlight-labs/fernsite/pkg/banner"
)

const (
	// DefaultIdleTTL is how long a viewer can stay away before their
	// controller is dropped.
	DefaultIdleTTL = 30 * time.Minute

	// DefaultSweepInterval is how often idle controllers are collected.
	DefaultSweepInterval = time.Minute
)

// Config holds configuration for a Registry.
type Config struct {
	// Banner configures every controller the registry creates.
	Banner banner.Config

	IdleTTL       time.Duration
	SweepInterval time.Duration
	Logger        *slog.Logger

	// Now overrides the clock in tests.
	Now func() time.Time
}

type entry struct {
	ctrl     *banner.Controller
	lastSeen time.Time
}

// Registry maps viewer ids to their banner controllers.
type Registry struct {
	bannerCfg     banner.Config
	idleTTL       time.Duration
	sweepInterval time.Duration
	logger        *slog.Logger
	now           func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

// New creates a Registry. Zero config values fall back to defaults.
func New(cfg Config) *Registry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Registry{
		bannerCfg:     cfg.Banner,
		idleTTL:       cfg.IdleTTL,
		sweepInterval: cfg.SweepInterval,
		logger:        cfg.Logger,
		now:           cfg.Now,
		entries:       make(map[string]*entry),
	}
}

// Acquire returns the controller for the given viewer, creating it on first
// contact and refreshing its idle deadline either way.
func (r *Registry) Acquire(viewerID string) *banner.Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[viewerID]
	if !ok {
		e = &entry{ctrl: banner.New(r.bannerCfg)}
		r.entries[viewerID] = e
	}
	e.lastSeen = r.now()
	return e.ctrl
}

// Len reports how many controllers are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep drops controllers whose viewers have been idle past the TTL and
// reports how many were dropped. Dropped controllers are closed so a pending
// cooldown timer never outlives its entry.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(cutoff) {
			e.ctrl.Close()
			delete(r.entries, id)
			dropped++
		}
	}
	return dropped
}

// CloseAll closes every controller and empties the registry.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.entries {
		e.ctrl.Close()
		delete(r.entries, id)
	}
}

// Run sweeps on the configured interval until the context is cancelled, then
// closes all remaining controllers.
func (r *Registry) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.CloseAll()
			return nil
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug("dropped idle banner controllers", "count", n, "live", r.Len())
			}
		}
	}
}
