// Package healthcheck_head answers HEAD /healthcheck readiness probes.
package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler reports 204 while the service accepts traffic. The shutdown
// sequence flips isShuttingDown before draining, so probes start failing
// with 503 and the balancer stops routing here ahead of the listener
// closing.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
