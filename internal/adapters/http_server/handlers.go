package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"aurora_concierge/internal/adapters/observability"
	"aurora_concierge/internal/app"
	"aurora_concierge/internal/pricing"
)

type Handlers struct{ C *app.Concierge }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID   string   `json:"session_id"`
	Messages    []string `json:"messages"`
	Suggestions []string `json:"suggestions"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/chat", h.chat)
	s.mux.Delete("/v1/chat/{id}", h.endChat)
	s.mux.Get("/v1/rooms", h.listRooms)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// chat runs one dialog turn. An empty session_id opens a new conversation;
// an empty message returns the greeting.
func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with session_id and message")
		return
	}

	sess, reply, err := h.C.Chat(r.Context(), req.SessionID, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("chat turn failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not process the message")
		return
	}
	observability.ObserveTurn(string(sess.LastIntent))

	out := chatResponse{SessionID: sess.ID, Messages: reply.Messages, Suggestions: reply.Suggestions}
	if out.Messages == nil {
		out.Messages = []string{}
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) endChat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "session id is required")
		return
	}
	if err := h.C.End(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("end session failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not end the session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) listRooms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, pricing.Catalog)
}
