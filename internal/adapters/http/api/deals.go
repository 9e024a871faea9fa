package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// DealsHandler serves proposals and contracts.
type DealsHandler struct {
	proposals ProposalDependencies
	contracts ContractDependencies
}

// NewDealsHandler creates a new proposals and contracts handler.
func NewDealsHandler(proposals ProposalDependencies, contracts ContractDependencies) *DealsHandler {
	return &DealsHandler{proposals: proposals, contracts: contracts}
}

// HandleListProposals handles GET /api/clients/{id}/proposals.
func (h *DealsHandler) HandleListProposals(w http.ResponseWriter, r *http.Request) {
	out, err := h.proposals.List(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "proposals.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleCreateProposal handles POST /api/proposals.
func (h *DealsHandler) HandleCreateProposal(w http.ResponseWriter, r *http.Request) {
	var in model.CreateProposal
	if err := decodeJSON(w, r, "proposals.create", &in); err != nil {
		writeServiceError(w, "proposals.create", err)
		return
	}
	p, err := h.proposals.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, "proposals.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// HandleUpdateProposal handles PUT /api/proposals/{id}.
func (h *DealsHandler) HandleUpdateProposal(w http.ResponseWriter, r *http.Request) {
	var patch model.ProposalPatch
	if err := decodeJSON(w, r, "proposals.update", &patch); err != nil {
		writeServiceError(w, "proposals.update", err)
		return
	}
	p, err := h.proposals.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, "proposals.update", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleListContracts handles GET /api/clients/{id}/contracts.
func (h *DealsHandler) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	out, err := h.contracts.List(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "contracts.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleCreateContract handles POST /api/contracts.
func (h *DealsHandler) HandleCreateContract(w http.ResponseWriter, r *http.Request) {
	var in model.CreateContract
	if err := decodeJSON(w, r, "contracts.create", &in); err != nil {
		writeServiceError(w, "contracts.create", err)
		return
	}
	c, err := h.contracts.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, "contracts.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
