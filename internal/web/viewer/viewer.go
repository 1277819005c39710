// Package viewer gives each browser a stable anonymous id. The id is the
// only thing stored in the session cookie; it keys the server-side banner
// registry and carries no other meaning.
package viewer

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "fernsite_viewer"
	idKey       = "viewer_id"
)

// NewStore returns the cookie store used for viewer sessions.
func NewStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30) // 30 days
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// ID returns the request's viewer id, minting and saving one on first
// contact. A cookie that fails to decode is treated as absent, so a stale or
// tampered cookie just means a fresh id.
func ID(store sessions.Store, w http.ResponseWriter, r *http.Request) (string, error) {
	sess, _ := store.Get(r, sessionName)

	if id, ok := sess.Values[idKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.New().String()
	sess.Values[idKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}
