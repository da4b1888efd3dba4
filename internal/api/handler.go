// Package api exposes the assistant over HTTP. The chat endpoint is
// stateless: clients thread the conversation history value between
// requests, exactly like the terminal client does.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wrteam/sportcenter-assistant/internal/assistant"
)

// maxRequestBodySize caps chat request bodies (1MB).
const maxRequestBodySize = 1 << 20

// ChatRequest is the POST /api/chat body.
type ChatRequest struct {
	Message string           `json:"message"`
	History []assistant.Turn `json:"history"`
}

// Handler serves chat requests.
type Handler struct {
	svc    *assistant.Service
	logger *slog.Logger
}

// NewHandler creates the chat handler.
func NewHandler(svc *assistant.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes registers the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.HandleChat)
	})
}

// HandleChat handles POST /api/chat requests. Inference failures still
// produce a 200 with an apologetic reply and an error marker, so clients
// can keep the session going.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	res, err := h.svc.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		h.logger.Warn("chat turn failed", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Warn("failed to encode chat response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
