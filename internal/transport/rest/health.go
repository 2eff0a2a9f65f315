package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// pinger is the minimal interface for a dependency health check.
type pinger interface {
	Ping(ctx context.Context) error
}

type component struct {
	name string
	p    pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	components []component
	version    string
	timeout    time.Duration
}

// NewHealthHandler creates a HealthHandler that checks the database.
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		components: []component{{name: "database", p: db}},
		version:    version,
		timeout:    3 * time.Second,
	}
}

// WithComponent registers an additional dependency checked by Ready and Health.
func (h *HealthHandler) WithComponent(name string, p pinger) *HealthHandler {
	h.components = append(h.components, component{name: name, p: p})
	return h
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 if every component answers, 503 with
// only the failing components otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())
	if ok {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
		return
	}

	for name, c := range components {
		if c.Status == "ok" {
			delete(components, name)
		}
	}
	writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
		Status:     "down",
		Components: components,
		Timestamp:  time.Now(),
	})
}

// Health reports every component with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}
	status := http.StatusOK
	if !ok {
		resp.Status, status = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// check pings all components concurrently under one shared timeout.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	statuses := make([]CompStatus, len(h.components))
	var g errgroup.Group
	for i, c := range h.components {
		g.Go(func() error {
			start := time.Now()
			if err := c.p.Ping(ctx); err != nil {
				statuses[i] = CompStatus{Status: "down", Error: err.Error()}
				return nil
			}
			statuses[i] = CompStatus{Status: "ok", Latency: time.Since(start).Round(time.Microsecond).String()}
			return nil
		})
	}
	_ = g.Wait()

	result := make(map[string]CompStatus, len(h.components))
	healthy := true
	for i, c := range h.components {
		result[c.name] = statuses[i]
		healthy = healthy && statuses[i].Status == "ok"
	}
	return result, healthy
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
