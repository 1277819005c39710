package landing

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
)

// SetupRoutes registers the landing feature routes.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	registry *banners.Registry,
	sessionStore sessions.Store,
	watch bool,
) error {
	handlers := NewHandlers(store, registry, sessionStore, watch)

	router.Get("/", handlers.LandingPage)
	router.NotFound(handlers.NotFound)

	return nil
}
