// Package router sets up HTTP routes for the web server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	bannerfeedFeature "github.com/fernlight-labs/fernsite/internal/web/features/bannerfeed"
	faqFeature "github.com/fernlight-labs/fernsite/internal/web/features/faq"
	landingFeature "github.com/fernlight-labs/fernsite/internal/web/features/landing"
	updatesFeature "github.com/fernlight-labs/fernsite/internal/web/features/updates"
	"github.com/fernlight-labs/fernsite/internal/web/notifier"
	"github.com/fernlight-labs/fernsite/internal/web/resources"
)

// SetupRoutes configures all routes for the web server.
func SetupRoutes(
	router chi.Router,
	store *content.Store,
	registry *banners.Registry,
	sessionStore *sessions.CookieStore,
	notify *notifier.Notifier,
	watch bool,
) error {
	// Static assets
	router.Handle("/static/*", resources.Handler())

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Reload stream for content watching
	if watch {
		if err := updatesFeature.SetupRoutes(router, notify); err != nil {
			return err
		}
	}

	// Feature routes
	if err := landingFeature.SetupRoutes(router, store, registry, sessionStore, watch); err != nil {
		return err
	}

	if err := faqFeature.SetupRoutes(router, store, registry, sessionStore, watch); err != nil {
		return err
	}

	if err := bannerfeedFeature.SetupRoutes(router, store, registry, sessionStore); err != nil {
		return err
	}

	return nil
}
