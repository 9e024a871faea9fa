package api

import (
	"net/http"
	"net/url"

	model "github.com/okian/pulss/internal/domain/model"
)

// ClientsHandler serves the client registry and pulse intake routes.
type ClientsHandler struct {
	clients ClientDependencies
}

// NewClientsHandler creates a new clients handler.
func NewClientsHandler(clients ClientDependencies) *ClientsHandler {
	return &ClientsHandler{clients: clients}
}

// HandleList handles GET /api/clients.
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.clients.List(r.Context())
	if err != nil {
		writeServiceError(w, "clients.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleGet handles GET /api/clients/{id}.
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	c, err := h.clients.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "clients.get", err)
		return
	}
	if c == nil {
		writeServiceError(w, "clients.get", NewKind("client "+id, ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// HandleCreate handles POST /api/clients.
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreateClient
	if err := decodeJSON(w, r, "clients.create", &in); err != nil {
		writeServiceError(w, "clients.create", err)
		return
	}
	c, err := h.clients.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, "clients.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// HandleUpdate handles PUT /api/clients/{id} with a partial body.
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.ClientPatch
	if err := decodeJSON(w, r, "clients.update", &patch); err != nil {
		writeServiceError(w, "clients.update", err)
		return
	}
	c, err := h.clients.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, "clients.update", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// HandleToggleStatus handles POST /api/clients/{id}/toggle-status.
func (h *ClientsHandler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	c, err := h.clients.ToggleStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "clients.toggle_status", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// HandlePulseLink handles POST /api/clients/{id}/pulse-link.
func (h *ClientsHandler) HandlePulseLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.clients.GeneratePulseURL(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "clients.pulse_link", err)
		return
	}
	out := model.PulseLink{URL: link}
	if u, perr := url.Parse(link); perr == nil {
		out.Token = u.Query().Get("token")
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleSubmitPulse handles POST /api/pulse-responses.
func (h *ClientsHandler) HandleSubmitPulse(w http.ResponseWriter, r *http.Request) {
	var in model.PulseAnswers
	if err := decodeJSON(w, r, "pulse.submit", &in); err != nil {
		writeServiceError(w, "pulse.submit", err)
		return
	}
	resp, err := h.clients.SubmitPulseResponse(r.Context(), in)
	if err != nil {
		writeServiceError(w, "pulse.submit", err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// orEmpty keeps list responses as JSON arrays.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
