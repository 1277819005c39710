// Package notifier fans content-reload pings out to connected pages.
package notifier

import "sync"

// Notifier is a broadcast bell with no payload. Pages subscribe while their
// update stream is open; a ping means site content changed and the page
// should re-render.
type Notifier struct {
	mu        sync.Mutex
	listeners map[chan struct{}]struct{}
}

// New returns an empty Notifier.
func New() *Notifier {
	return &Notifier{listeners: make(map[chan struct{}]struct{})}
}

// Subscribe registers a listener and returns its channel together with a
// cancel function. Cancel detaches the listener and closes the channel; it
// is safe to call more than once.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	n.listeners[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast pings every listener without blocking. A listener that has not
// drained its previous ping is skipped; it will re-render once and catch up.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch := range n.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
