// Package faq provides the FAQ page and its live filter.
package faq

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/components"
	"github.com/fernlight-labs/fernsite/internal/web/viewer"
)

// FilterSignals represents the signals sent from the search box.
type FilterSignals struct {
	Query string `json:"query"`
}

// Handlers provides HTTP handlers for the FAQ feature.
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

// FAQPage renders the FAQ page with every entry expanded-on-demand.
func (h *Handlers) FAQPage(w http.ResponseWriter, r *http.Request) {
	id, err := viewer.ID(h.sessionStore, w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	ctrl := h.registry.Acquire(id)
	b := h.content.Bundle()

	page := components.FAQPage(b, components.PageOptions{
		BannerState: ctrl.Snapshot(),
		Live:        true,
		Watch:       h.watch,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// FilterSSE re-renders the FAQ list for the current query signal.
func (h *Handlers) FilterSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals before creating the SSE stream; it consumes the body.
	var signals FilterSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(err)
		return
	}

	sse := datastar.NewSSE(w, r)

	entries := h.content.Bundle().FilterFAQ(signals.Query)
	html, err := components.RenderString(components.FAQList(entries))
	if err != nil {
		_ = sse.ConsoleError(err)
		return
	}
	if err := sse.PatchElements(html); err != nil {
		_ = sse.ConsoleError(err)
	}
}
