// Package serve exposes the classification engine over HTTP. The
// transport layer is deliberately thin: decode pages, run the engine,
// encode results.
package serve

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/classify"
)

// Version of the detection service surface.
const Version = "2.0.0"

// Server wires the engine to the HTTP surface.
type Server struct {
	engine *classify.Engine
	logger *slog.Logger
}

// NewServer creates a server around an engine.
func NewServer(engine *classify.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, logger: logger}
}

// Router builds the chi router with the service endpoints.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/detect-view-type/", s.handleDetect)
	r.Get("/health/", s.handleHealth)
	r.Get("/", s.handleRoot)

	return r
}

// handleDetect classifies a batch of pages.
// POST /detect-view-type/
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req models.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.logger.Info("detecting view types", "pages", len(req.Pages))
	entries := s.engine.ClassifyBatch(req.Pages)

	writeJSON(w, http.StatusOK, models.DetectResponse{Pages: entries})
}

// handleHealth reports service liveness.
// GET /health/
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "viewtype-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleRoot returns the service banner with the endpoint map.
// GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Advanced View Type Detection API",
		"version": Version,
		"endpoints": map[string]string{
			"/detect-view-type/": "Detect view type using knowledge base",
			"/health/":           "Health check",
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
