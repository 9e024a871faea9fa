package api

import (
	"net/http"
)

// BoardHandler serves the director board.
type BoardHandler struct {
	board BoardDependencies
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(board BoardDependencies) *BoardHandler {
	return &BoardHandler{board: board}
}

// HandleList handles GET /api/director-board/clients.
func (h *BoardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	out, err := h.board.List(r.Context())
	if err != nil {
		writeServiceError(w, "board.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}
