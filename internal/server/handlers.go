// ABOUTME: HTTP handlers for chat, SSE streaming, and memory inspection
// ABOUTME: Maps memory sentinel errors onto 400/404 status codes
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/harper/memoria/internal/memory"
	"github.com/harper/memoria/internal/models"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"model": s.service.ModelName(),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.service.ChatTurn(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, memory.ErrInvalidInput) {
			s.writeError(w, http.StatusBadRequest, "message is empty")
			return
		}
		s.logger.Error("chat turn failed", "error", err)
		s.writeError(w, http.StatusBadGateway, "completion failed")
		return
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChatStream(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if strings.TrimSpace(message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is empty")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := s.service.StreamChat(r.Context(), message, func(chunk string) {
		fmt.Fprintf(w, "data: %s\n\n", chunk)
		flusher.Flush()
	})
	if err != nil {
		// Headers are already sent; all we can do is end the stream
		s.logger.Error("chat stream failed", "error", err)
	}

	fmt.Fprint(w, "event: done\n\n")
	flusher.Flush()
}

func (s *Server) handleReadShort(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	content, err := s.service.Store().Read(date)
	if err != nil {
		switch {
		case errors.Is(err, memory.ErrInvalidInput):
			s.writeError(w, http.StatusBadRequest, "invalid date format")
		case errors.Is(err, memory.ErrNotFound):
			s.writeError(w, http.StatusNotFound, "not found")
		default:
			s.logger.Error("failed to read daily record", "date", date, "error", err)
			s.writeError(w, http.StatusInternalServerError, "read failed")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"date": date, "content": content})
}

func (s *Server) handleReadLong(w http.ResponseWriter, r *http.Request) {
	content, err := s.service.Store().ReadAll()
	if err != nil {
		s.logger.Error("failed to read fact store", "error", err)
		s.writeError(w, http.StatusInternalServerError, "read failed")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	days := 14
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid days")
			return
		}
		days = n
	}

	content, err := s.service.Store().Collect(query, days)
	if err != nil {
		if errors.Is(err, memory.ErrInvalidInput) {
			s.writeError(w, http.StatusBadRequest, "invalid days")
			return
		}
		s.logger.Error("retrieval failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "retrieval failed")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (s *Server) handleMaintenance(w http.ResponseWriter, r *http.Request) {
	report := s.service.RunMaintenance(r.Context())
	s.writeJSON(w, http.StatusOK, report)
}
