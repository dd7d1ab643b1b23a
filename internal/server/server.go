// ABOUTME: HTTP transport for the chat backend using chi routing
// ABOUTME: Permissive CORS so the local frontend can call from any origin
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi"
	"github.com/rs/cors"

	"github.com/harper/memoria/internal/core"
)

// Server exposes the chat and memory operations over HTTP
type Server struct {
	service *core.Service
	logger  *log.Logger
}

// New creates an HTTP server around the chat service
func New(service *core.Service, logger *log.Logger) *Server {
	return &Server{service: service, logger: logger}
}

// Router builds the chi router with CORS and all routes mounted
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: true,
	}).Handler)

	router.Get("/", s.handleHealth)
	router.Post("/api/chat", s.handleChat)
	router.Get("/api/chat/stream", s.handleChatStream)
	router.Get("/api/memory/short", s.handleReadShort)
	router.Get("/api/memory/long", s.handleReadLong)
	router.Get("/api/memory/retrieve", s.handleRetrieve)
	router.Post("/api/memory/maintenance", s.handleMaintenance)

	return router
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
