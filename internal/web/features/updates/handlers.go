// Package updates streams a reload instruction to connected pages whenever
// the site content changes on disk.
package updates

import (
	"net/http"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/fernlight-labs/fernsite/internal/web/notifier"
)

type Handlers struct {
	notifier *notifier.Notifier
}

func NewHandlers(n *notifier.Notifier) *Handlers {
	return &Handlers{notifier: n}
}

// Stream holds the connection open and tells the page to reload whenever the
// notifier fires. The subscription is dropped as soon as the client goes
// away.
func (h *Handlers) Stream(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	changed, cancel := h.notifier.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-changed:
			if err := sse.ExecuteScript("window.location.reload()"); err != nil {
				return
			}
		}
	}
}
