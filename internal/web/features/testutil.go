// Package features provides shared test utilities for web feature tests.
package features

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/fernlight-labs/fernsite/internal/content"
	"github.com/fernlight-labs/fernsite/internal/testutil"
	"github.com/fernlight-labs/fernsite/internal/web/banners"
	"github.com/fernlight-labs/fernsite/internal/web/notifier"
	"github.com/fernlight-labs/fernsite/internal/web/viewer"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

// TestFixture holds all dependencies needed for feature handler tests. The
// content store serves the embedded defaults.
type TestFixture struct {
	Content      *content.Store
	Registry     *banners.Registry
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
}

// SetupTestFixture creates a fixture backed by default content and a fresh
// banner registry. Pass a banner config to control the cooldown timer from
// the test.
func SetupTestFixture(t *testing.T, bannerCfg ...banner.Config) *TestFixture {
	t.Helper()

	store, err := content.Open("")
	require.NoError(t, err)

	cfg := banners.Config{Logger: testutil.NewTestLogger(t)}
	if len(bannerCfg) > 0 {
		cfg.Banner = bannerCfg[0]
	}
	registry := banners.New(cfg)
	t.Cleanup(registry.CloseAll)

	return &TestFixture{
		Content:      store,
		Registry:     registry,
		Notifier:     notifier.New(),
		SessionStore: NewTestSessionStore(),
	}
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return viewer.NewStore("test-secret-key-32-bytes-long!!")
}

// EstablishViewer mints a viewer id against the store and copies its cookie
// onto the request, so handlers resolve the request to a known viewer.
func EstablishViewer(t *testing.T, store sessions.Store, r *http.Request) string {
	t.Helper()

	rec := httptest.NewRecorder()
	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	id, err := viewer.ID(store, rec, seed)
	require.NoError(t, err)

	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return id
}
