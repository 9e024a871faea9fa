package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// SchedulesHandler serves calendar events.
type SchedulesHandler struct {
	schedules ScheduleDependencies
}

// NewSchedulesHandler creates a new schedules handler.
func NewSchedulesHandler(schedules ScheduleDependencies) *SchedulesHandler {
	return &SchedulesHandler{schedules: schedules}
}

// HandleList handles GET /api/schedules?date=&team=.
func (h *SchedulesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := model.ScheduleQuery{
		Date: r.URL.Query().Get("date"),
		Team: r.URL.Query().Get("team"),
	}
	out, err := h.schedules.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, "schedules.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleCreate handles POST /api/schedules.
func (h *SchedulesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.ScheduleInput
	if err := decodeJSON(w, r, "schedules.create", &in); err != nil {
		writeServiceError(w, "schedules.create", err)
		return
	}
	ev, err := h.schedules.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, "schedules.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, ev)
}

// HandleUpdate handles PUT /api/schedules/{id}.
func (h *SchedulesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in model.ScheduleInput
	if err := decodeJSON(w, r, "schedules.update", &in); err != nil {
		writeServiceError(w, "schedules.update", err)
		return
	}
	ev, err := h.schedules.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, "schedules.update", err)
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// HandleDelete handles DELETE /api/schedules/{id}.
func (h *SchedulesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.schedules.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, "schedules.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
