// Package httpapi exposes a computed probability report over HTTP. The API
// is read-only: the report is computed once by the caller and served as-is.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/matchprob/match"
)

// Summary describes the enumeration outcome behind the served report.
type Summary struct {
	Couples  int  `json:"couples"`
	Rounds   int  `json:"rounds"`
	Total    int  `json:"total"`
	Feasible bool `json:"feasible"`
}

// Handler bundles the immutable report with its summary.
type Handler struct {
	output  match.Output
	summary Summary
}

// NewHandler builds the handler for one computed report.
func NewHandler(output match.Output, summary Summary) *Handler {
	return &Handler{output: output, summary: summary}
}

// Router assembles the chi router: health probe plus the two report routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)
	r.Get("/api/v1/probabilities", h.probabilities)
	r.Get("/api/v1/summary", h.getSummary)

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) probabilities(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.output)
}

func (h *Handler) getSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.summary)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}
