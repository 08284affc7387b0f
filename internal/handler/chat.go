package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/aura/internal/ctxkeys"
	"github.com/templui/aura/internal/markdown"
	"github.com/templui/aura/internal/middleware"
	"github.com/templui/aura/internal/service"
	"github.com/templui/aura/internal/validation"
)

type ChatHandler struct {
	responder *service.Responder
	sessions  *middleware.Sessions
	markdown  *markdown.Parser
}

func NewChatHandler(responder *service.Responder, sessions *middleware.Sessions, md *markdown.Parser) *ChatHandler {
	return &ChatHandler{
		responder: responder,
		sessions:  sessions,
		markdown:  md,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	HTML     string `json:"html,omitempty"`
}

// Chat answers one message. The first non-empty message of a session also
// gets the greeting with pending reminders and goals.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		slog.Warn("failed to decode chat request", "error", err)
		writeJSON(w, http.StatusOK, chatResponse{Response: middleware.ApologyResponse})
		return
	}

	err = validation.ValidateMessage(req.Message)
	if err != nil {
		writeJSON(w, http.StatusOK, chatResponse{Response: "That's a lot to take in! Could you share it in a shorter message? 💭"})
		return
	}

	h.reply(w, r, req.Message)
}

func (h *ChatHandler) reply(w http.ResponseWriter, r *http.Request, message string) {
	ctx := r.Context()

	var response string
	switch {
	case strings.TrimSpace(message) == "":
		response = service.EmptyPrompt
	case h.sessions.Greet(ctxkeys.Session(ctx)):
		response = h.responder.FirstContact(ctx, message)
	default:
		response = h.responder.ProcessMessage(ctx, message)
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Response: response,
		HTML:     h.markdown.Render(response),
	})
}

// Reset forgets the session so the next message is greeted again.
func (h *ChatHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.sessions.Forget(ctxkeys.Session(r.Context()))
	h.sessions.Clear(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "Session reset"})
}
