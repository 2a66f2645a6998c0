package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/word-definition/internal/domain"
)

const (
	pingTimeout       = 3 * time.Second
	upstreamComponent = "wiktionary"
)

type upstreamPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	upstream upstreamPinger
	version  string
}

// NewHealthHandler creates a HealthHandler that probes the wiki API.
func NewHealthHandler(upstream upstreamPinger, version string) *HealthHandler {
	return &HealthHandler{upstream: upstream, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component. Error carries the
// classified failure of a down component.
type CompStatus struct {
	Status  string           `json:"status"`
	Latency string           `json:"latency,omitempty"`
	Error   domain.ErrorKind `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. 200 if the wiki API answers a siteinfo
// query, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.checkUpstream(r.Context())
	h.write(w, comp, "")
}

// Health is the full health check: upstream status with latency, plus the
// build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.checkUpstream(r.Context())
	h.write(w, comp, h.version)
}

func (h *HealthHandler) checkUpstream(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := h.upstream.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		return CompStatus{Status: "down", Error: domain.Kind(err)}
	}
	return CompStatus{Status: "ok", Latency: latency.String()}
}

func (h *HealthHandler) write(w http.ResponseWriter, comp CompStatus, version string) {
	status := http.StatusOK
	if comp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     comp.Status,
		Version:    version,
		Components: map[string]CompStatus{upstreamComponent: comp},
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
