package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// TasksHandler serves per-client tasks.
type TasksHandler struct {
	tasks TaskDependencies
}

// NewTasksHandler creates a new tasks handler.
func NewTasksHandler(tasks TaskDependencies) *TasksHandler {
	return &TasksHandler{tasks: tasks}
}

// HandleList handles GET /api/clients/{id}/tasks?category=.
func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	category := model.TaskCategory(r.URL.Query().Get("category"))
	out, err := h.tasks.List(r.Context(), r.PathValue("id"), category)
	if err != nil {
		writeServiceError(w, "tasks.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleCreate handles POST /api/clients/{id}/tasks.
func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreateTask
	if err := decodeJSON(w, r, "tasks.create", &in); err != nil {
		writeServiceError(w, "tasks.create", err)
		return
	}
	t, err := h.tasks.Create(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, "tasks.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// HandleUpdate handles PUT /api/tasks/{id}.
func (h *TasksHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.TaskPatch
	if err := decodeJSON(w, r, "tasks.update", &patch); err != nil {
		writeServiceError(w, "tasks.update", err)
		return
	}
	t, err := h.tasks.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, "tasks.update", err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
