package bannerfeed

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/components"
)

// SetupRoutes registers the banner feed routes.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	registry *banners.Registry,
	sessionStore sessions.Store,
) error {
	handlers := NewHandlers(store, registry, sessionStore)

	router.Post(components.ScrollEndpoint, handlers.ScrollSSE)
	router.Post(components.DismissEndpoint, handlers.DismissSSE)

	return nil
}
