package api

import (
	"net/http"
)

// SuggestionsHandler serves AI message drafts.
type SuggestionsHandler struct {
	suggestions SuggestionDependencies
}

// NewSuggestionsHandler creates a new suggestions handler.
func NewSuggestionsHandler(suggestions SuggestionDependencies) *SuggestionsHandler {
	return &SuggestionsHandler{suggestions: suggestions}
}

// HandleList handles GET /api/clients/{id}/ai-suggestions.
func (h *SuggestionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.suggestions.List(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, "suggestions.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleGenerate handles POST /api/clients/{id}/ai-suggestions. The body is
// an optional hint object forwarded as is.
func (h *SuggestionsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var hint map[string]any
	if err := decodeJSON(w, r, "suggestions.generate", &hint); err != nil {
		writeServiceError(w, "suggestions.generate", err)
		return
	}
	s, err := h.suggestions.Generate(r.Context(), r.PathValue("id"), hint)
	if err != nil {
		writeServiceError(w, "suggestions.generate", err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}
