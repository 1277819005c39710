package landing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernlight-labs/fernsite/internal/web/features"
	"github.com/fernlight-labs/fernsite/pkg/banner"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(fixture.Content, fixture.Registry, fixture.SessionStore, false)
	return handlers, fixture
}

func TestLandingPage(t *testing.T) {
	tests := []struct {
		name       string
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "returns full HTML with hero, pricing, and hidden banner",
			wantStatus: http.StatusOK,
			wantBody: []string{
				"<!DOCTYPE html>",
				"<title>Fernlight | Focus that grows back.</title>",
				`id="cta-banner"`,
				"is-hidden",
				"data-on-scroll__window__throttle.150ms",
				"Simple pricing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := setupTestHandlers(t)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			h.LandingPage(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want, "response should contain %q", want)
			}
		})
	}
}

func TestLandingPageWatchModeAttachesReloadFeed(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := NewHandlers(fixture.Content, fixture.Registry, fixture.SessionStore, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.LandingPage(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "data-init")
	assert.Contains(t, body, "/updates")
}

func TestLandingPageSetsViewerCookie(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.LandingPage(rec, req)

	require.NotEmpty(t, rec.Result().Cookies(), "first visit should set the viewer cookie")
}

func TestLandingPageRendersViewerBannerState(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	id := features.EstablishViewer(t, fixture.SessionStore, req)

	// The viewer scrolled into the reveal zone on a previous request.
	ctrl := fixture.Registry.Acquire(id)
	ctrl.OnScroll(banner.Viewport{ScrollY: 700, DocumentHeight: 3000, ViewportHeight: 800})

	rec := httptest.NewRecorder()
	h.LandingPage(rec, req)

	body := rec.Body.String()
	assert.Contains(t, body, "cta-banner is-visible")
	assert.NotContains(t, body, "cta-banner is-hidden")
}

func TestNotFound(t *testing.T) {
	h, _ := setupTestHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "There is nothing here.")
}
