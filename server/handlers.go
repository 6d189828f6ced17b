package server

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/backend"
	"github.com/katalvlaran/campusnav/logging"
)

const maxSuggestions = 50

type handlers struct {
	locator   Locator
	fragments Fragments
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	if h.locator == nil {
		respondJSON(w, http.StatusOK, healthResponse{Status: "ok"})
		return
	}

	info := h.locator.Info()
	resp := healthResponse{
		Status:   "ok",
		Source:   info.Source,
		LoadedAt: info.LoadedAt,
		Nodes:    info.Stats.NodeCount,
		Edges:    info.Stats.EdgeCount,
	}
	status := http.StatusOK
	if info.Stats.NodeCount == 0 {
		logging.FromContext(r.Context()).Warn("health probe: no campus map loaded")
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
		resp.Error = "no campus map loaded"
	}

	respondJSON(w, status, resp)
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	err := indexPage.Execute(&b, indexData{
		ShortestPrompt: template.HTML(h.fragments.ShortestPathPromptHTML()),
		LongestPrompt:  template.HTML(h.fragments.LongestLocationListFromPromptHTML()),
	})
	if err != nil {
		logging.FromContext(r.Context()).Error("render index", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	respondHTML(w, http.StatusOK, b.String())
}

func (h *handlers) shortest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, end := q.Get("start"), q.Get("end")
	logging.FromContext(r.Context()).Debug("shortest path query", "start", start, "end", end)

	respondHTML(w, http.StatusOK, h.fragments.ShortestPathResponseHTML(start, end))
}

func (h *handlers) longest(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	logging.FromContext(r.Context()).Debug("longest list query", "start", start)

	respondHTML(w, http.StatusOK, h.fragments.LongestLocationListFromResponseHTML(start))
}

func (h *handlers) locations(w http.ResponseWriter, _ *http.Request) {
	locs := h.locator.Locations()
	if locs == nil {
		locs = []string{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"locations": locs})
}

func (h *handlers) suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := maxSuggestions
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxSuggestions)
	}

	out := h.locator.Suggest(q.Get("prefix"), limit)
	if out == nil {
		out = []string{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"locations": out})
}

func (h *handlers) stops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	route, err := h.locator.FewestStops(q.Get("start"), q.Get("end"))
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"locations": route, "stops": len(route) - 1})
}

func (h *handlers) nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	n, err := strconv.Atoi(q.Get("stops"))
	if err != nil || n <= 0 {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "stops must be a positive integer"})
		return
	}

	out, err := h.locator.Nearby(q.Get("start"), n)
	if err != nil {
		respondQueryError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"locations": out})
}

// respondQueryError maps a failed location query onto a JSON error.
func respondQueryError(w http.ResponseWriter, r *http.Request, err error) {
	kind := backend.KindOf(err)
	status := http.StatusNotFound
	if kind == backend.KindUnknown {
		logging.FromContext(r.Context()).Error("location query failed", "error", err)
		status = http.StatusInternalServerError
	}
	respondJSON(w, status, map[string]string{"error": kind.String(), "message": err.Error()})
}
