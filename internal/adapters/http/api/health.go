package api

import (
	"context"
	"net/http"
	"time"

	"github.com/okian/pulss/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// readyPingTimeout bounds the upstream ping behind /readyz.
const readyPingTimeout = 2 * time.Second

// HealthHandler handles liveness, readiness and metrics requests.
type HealthHandler struct {
	upstream Pinger
	metrics  http.Handler
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(upstream Pinger) *HealthHandler {
	return &HealthHandler{
		upstream: upstream,
		metrics:  promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

// HandleHealth handles GET /healthz by serving Prometheus metrics.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.metrics.ServeHTTP(w, r)
}

type readiness struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Error    string `json:"error,omitempty"`
}

// HandleReady handles GET /readyz. The service stays ready while the Pulss
// API is down because reads degrade to fallback data; the body says so.
func (h *HealthHandler) HandleReady(w http.ResponseWriter, r *http.Request) {
	if h.upstream == nil {
		writeJSON(w, http.StatusOK, readiness{Status: "ok", Upstream: "unknown"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()
	if err := h.upstream.Ping(ctx); err != nil {
		writeJSON(w, http.StatusOK, readiness{Status: "degraded", Upstream: "down", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, readiness{Status: "ok", Upstream: "up"})
}
