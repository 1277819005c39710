// Package bannerfeed drives the sticky banner from browser scroll geometry.
// The page streams scroll positions in; the server owns visibility, dismissal,
// and the re-offer cooldown, and patches the banner element only when its
// state actually changes.
package bannerfeed

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/components"
	"github.com/fernlight-labs/fernsite/internal/web/viewer"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// ScrollSignals represents the geometry signals published by the page.
type ScrollSignals struct {
	ScrollY        float64 `json:"scrollY"`
	PageHeight     float64 `json:"pageHeight"`
	ViewportHeight float64 `json:"viewportHeight"`
}

// Handlers provides HTTP handlers for the banner feed.
type Handlers struct {
	content      *content.Store
	registry     *banners.Registry
	sessionStore sessions.Store
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *content.Store, registry *banners.Registry, sessionStore sessions.Store) *Handlers {
	return &Handlers{
		content:      store,
		registry:     registry,
		sessionStore: sessionStore,
	}
}

// ScrollSSE feeds one scroll sample to the viewer's controller. The stream
// stays empty unless the sample flipped the banner; repeated identical
// samples patch nothing.
func (h *Handlers) ScrollSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals and resolve the viewer before opening the SSE stream;
	// reading consumes the body and the cookie needs to go out with the
	// response headers.
	var signals ScrollSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	id, err := viewer.ID(h.sessionStore, w, r)
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}
	ctrl := h.registry.Acquire(id)

	_, changed := ctrl.OnScroll(banner.Viewport{
		ScrollY:        signals.ScrollY,
		DocumentHeight: signals.PageHeight,
		ViewportHeight: signals.ViewportHeight,
	})

	sse := datastar.NewSSE(w, r)
	if !changed {
		return
	}
	h.patchBanner(sse, ctrl.Snapshot())
}

// DismissSSE dismisses the banner for this viewer and starts the re-offer
// cooldown. Dismissing an already dismissed banner changes nothing server
// side; the hidden patch still goes out so the element cannot linger.
func (h *Handlers) DismissSSE(w http.ResponseWriter, r *http.Request) {
	id, err := viewer.ID(h.sessionStore, w, r)
	if err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}
	ctrl := h.registry.Acquire(id)
	ctrl.Dismiss()

	sse := datastar.NewSSE(w, r)
	h.patchBanner(sse, ctrl.Snapshot())
}

// patchBanner re-renders the banner element in the given state.
func (h *Handlers) patchBanner(sse *datastar.ServerSentEventGenerator, st banner.State) {
	b := h.content.Bundle()

	html, err := components.RenderString(components.CTABanner(b.Banner, b.Site, st))
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(html); err != nil {
		_ = sse.ConsoleError(err)
	}
}
