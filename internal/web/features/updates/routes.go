package updates

import (
	"github.com/go-chi/chi/v5"

	"github.com/fernlight-labs/fernsite/internal/web/components"
	"github.com/fernlight-labs/fernsite/internal/web/notifier"
)

func SetupRoutes(router chi.Router, n *notifier.Notifier) error {
	handlers := NewHandlers(n)

	router.Get(components.UpdatesEndpoint, handlers.Stream)

	return nil
}
