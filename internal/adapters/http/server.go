// Package http exposes an assembled walkthrough as a read-only JSON API.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/waymark/pkg/walkthrough"
)

// Provider returns the walkthrough to serve. Keeping this behind a function
// lets callers re-assemble on change without restarting the server.
type Provider func() *walkthrough.Walkthrough

// Server serves one walkthrough.
type Server struct {
	provider Provider
	metrics  *Metrics
}

// NewHandler creates the HTTP handler for a walkthrough provider. Metrics
// may be nil to serve without instrumentation.
func NewHandler(provider Provider, metrics *Metrics) http.Handler {
	s := &Server{provider: provider, metrics: metrics}

	r := chi.NewRouter()
	if metrics != nil {
		r.Use(metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	}
	r.Get("/healthz", s.health)
	r.Get("/walkthrough", s.getWalkthrough)
	r.Get("/walkthrough/tasks", s.listTasks)
	r.Get("/walkthrough/tasks/{index}", s.getTask)

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getWalkthrough returns the full assembled graph.
func (s *Server) getWalkthrough(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.provider())
}

// taskSummary is the list view of a task: no content blocks, just shape.
type taskSummary struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Time      int    `json:"time"`
	Blocks    int    `json:"blocks"`
	Resources int    `json:"resources"`
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	wt := s.provider()
	summaries := make([]taskSummary, len(wt.Tasks))
	for i, task := range wt.Tasks {
		summaries[i] = taskSummary{
			Index:     i,
			Title:     task.Title,
			Time:      task.Time,
			Blocks:    len(task.Content),
			Resources: len(task.Resources),
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	wt := s.provider()
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= len(wt.Tasks) {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, wt.Tasks[index])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// The status line is already written; nothing left to do.
		return
	}
}
