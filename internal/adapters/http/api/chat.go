package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// ChatHandler proxies the intake chat.
type ChatHandler struct {
	chat ChatDependencies
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chat ChatDependencies) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// HandleStart handles POST /api/pulss-chat/start-from-link/{clientId}/{token}.
func (h *ChatHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	start, err := h.chat.StartFromLink(r.Context(), r.PathValue("clientId"), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, "chat.start", err)
		return
	}
	writeJSON(w, http.StatusOK, start)
}

// HandleSend handles POST /api/pulss-chat/sessions/{sessionId}/messages.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var msg model.ChatMessage
	if err := decodeJSON(w, r, "chat.send", &msg); err != nil {
		writeServiceError(w, "chat.send", err)
		return
	}
	reply, err := h.chat.SendMessage(r.Context(), r.PathValue("sessionId"), msg.UserMessage)
	if err != nil {
		writeServiceError(w, "chat.send", err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}
