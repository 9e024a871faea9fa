package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// NotificationsHandler serves per-user notifications.
type NotificationsHandler struct {
	notifications NotificationDependencies
}

// NewNotificationsHandler creates a new notifications handler.
func NewNotificationsHandler(notifications NotificationDependencies) *NotificationsHandler {
	return &NotificationsHandler{notifications: notifications}
}

// HandleList handles GET /api/notifications?user=.
func (h *NotificationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.notifications.List(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeServiceError(w, "notifications.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleCreate handles POST /api/notifications?user= with a title and body.
func (h *NotificationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.NotificationInput
	if err := decodeJSON(w, r, "notifications.create", &in); err != nil {
		writeServiceError(w, "notifications.create", err)
		return
	}
	n, err := h.notifications.Create(r.Context(), r.URL.Query().Get("user"), in)
	if err != nil {
		writeServiceError(w, "notifications.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// HandleMarkRead handles POST /api/notifications/{id}/read.
func (h *NotificationsHandler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.MarkRead(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "notifications.mark_read", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
