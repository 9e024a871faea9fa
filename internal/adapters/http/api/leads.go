package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// LeadsHandler serves the sales pipeline and each lead's contact log.
type LeadsHandler struct {
	leads LeadDependencies
}

// NewLeadsHandler creates a new leads handler.
func NewLeadsHandler(leads LeadDependencies) *LeadsHandler {
	return &LeadsHandler{leads: leads}
}

// HandleList handles GET /api/leads.
func (h *LeadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.leads.List(r.Context())
	if err != nil {
		writeServiceError(w, "leads.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleCreate handles POST /api/leads.
func (h *LeadsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.CreateLead
	if err := decodeJSON(w, r, "leads.create", &in); err != nil {
		writeServiceError(w, "leads.create", err)
		return
	}
	l, err := h.leads.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, "leads.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// HandleUpdate handles PUT /api/leads/{id}.
func (h *LeadsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch model.LeadPatch
	if err := decodeJSON(w, r, "leads.update", &patch); err != nil {
		writeServiceError(w, "leads.update", err)
		return
	}
	l, err := h.leads.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, "leads.update", err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// HandleContacts handles GET /api/leads/{id}/contacts.
func (h *LeadsHandler) HandleContacts(w http.ResponseWriter, r *http.Request) {
	out, err := h.leads.Contacts(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "leads.contacts", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleAddContact handles POST /api/leads/{id}/contacts.
func (h *LeadsHandler) HandleAddContact(w http.ResponseWriter, r *http.Request) {
	var in model.CreateContact
	if err := decodeJSON(w, r, "leads.add_contact", &in); err != nil {
		writeServiceError(w, "leads.add_contact", err)
		return
	}
	c, err := h.leads.AddContact(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, "leads.add_contact", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
