package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/katalvlaran/campusnav/backend"
	"github.com/katalvlaran/campusnav/metrics"
)

// Locator is the part of the location service the JSON endpoints use.
type Locator interface {
	Locations() []string
	Suggest(prefix string, limit int) []string
	Info() backend.Info
	FewestStops(start, end string) ([]string, error)
	Nearby(start string, stops int) ([]string, error)
}

// Fragments renders the prompt and response HTML.
type Fragments interface {
	ShortestPathPromptHTML() string
	ShortestPathResponseHTML(start, end string) string
	LongestLocationListFromPromptHTML() string
	LongestLocationListFromResponseHTML(start string) string
}

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Locator   Locator
	Fragments Fragments
	// Metrics, when set, records HTTP traffic. MetricsEndpoint additionally
	// mounts its handler at /metrics.
	Metrics         *metrics.Metrics
	MetricsEndpoint bool
}

// NewRouter wires the HTTP routes exposed by the navigator.
func NewRouter(logger *slog.Logger, deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()
	h := &handlers{locator: deps.Locator, fragments: deps.Fragments}

	mux.HandleFunc("GET /healthz", h.health)
	if deps.Fragments != nil {
		mux.HandleFunc("GET /{$}", h.index)
		mux.HandleFunc("GET /shortest", h.shortest)
		mux.HandleFunc("GET /longest", h.longest)
	}
	if deps.Locator != nil {
		mux.HandleFunc("GET /locations", h.locations)
		mux.HandleFunc("GET /suggest", h.suggest)
		mux.HandleFunc("GET /stops", h.stops)
		mux.HandleFunc("GET /nearby", h.nearby)
	}
	if deps.Metrics != nil && deps.MetricsEndpoint {
		mux.Handle("GET /metrics", deps.Metrics.Handler())
	}

	return requestIDMiddleware(logger, loggingMiddleware(deps.Metrics, mux))
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func respondHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// healthResponse is the /healthz payload.
type healthResponse struct {
	Status   string    `json:"status"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loadedAt,omitzero"`
	Nodes    int       `json:"nodes"`
	Edges    int       `json:"edges"`
	Error    string    `json:"error,omitempty"`
}
