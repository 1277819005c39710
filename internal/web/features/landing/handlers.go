// Package landing provides the landing page feature.
package landing

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/components"
	"github.com/fernlight-labs/fernsite/internal/web/viewer"
)

// Handlers provides HTTP handlers for the landing feature.
type Handlers struct {
	content      *content.Store
	registry     *banners.Registry
	sessionStore sessions.Store
	watch        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store *content.Store, registry *banners.Registry, sessionStore sessions.Store, watch bool) *Handlers {
	return &Handlers{
		content:      store,
		registry:     registry,
		sessionStore: sessionStore,
		watch:        watch,
	}
}

// LandingPage renders the full landing page. The banner comes out in this
// viewer's current state, so a reload mid-visit does not resurrect a
// dismissed banner.
func (h *Handlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	id, err := viewer.ID(h.sessionStore, w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	ctrl := h.registry.Acquire(id)
	b := h.content.Bundle()

	page := components.LandingPage(b, components.PageOptions{
		BannerState: ctrl.Snapshot(),
		Live:        true,
		Watch:       h.watch,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	b := h.content.Bundle()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_ = components.NotFoundPage(b.Site).Render(w)
}
