package rest

import (
	"net/http"
	"strconv"
	"time"
)

type historyStats interface {
	Len() int
	Cap() int
}

type breakerReporter interface {
	Provider() string
	BreakerState() string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	history   historyStats
	upstreams []breakerReporter
	version   string
	now       func() time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(history historyStats, version string, upstreams ...breakerReporter) *HealthHandler {
	return &HealthHandler{history: history, upstreams: upstreams, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /health and /health/live.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Health reports the version, history occupancy and upstream breaker
// states. An open breaker marks the service "degraded"; lookups still
// answer, so the status code stays 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"history": {
			Status: "ok",
			Detail: strconv.Itoa(h.history.Len()) + "/" + strconv.Itoa(h.history.Cap()),
		},
	}
	overall := "ok"

	for _, u := range h.upstreams {
		state := u.BreakerState()
		status := "ok"
		if state == "open" {
			status = "degraded"
			overall = "degraded"
		}
		components["upstream:"+u.Provider()] = CompStatus{Status: status, Detail: "breaker " + state}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}
