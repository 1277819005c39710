package faq

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/components"
)

// SetupRoutes registers the FAQ feature routes.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	registry *banners.Registry,
	sessionStore sessions.Store,
	watch bool,
) error {
	handlers := NewHandlers(store, registry, sessionStore, watch)

	router.Get("/faq", handlers.FAQPage)
	router.Post(components.FAQFilterEndpoint, handlers.FilterSSE)

	return nil
}
