package api

import (
	"net/http"

	model "github.com/okian/pulss/internal/domain/model"
)

// NewsHandler serves the SNS news feed.
type NewsHandler struct {
	news    NewsDependencies
	clients ClientDependencies
}

// NewNewsHandler creates a new news handler. clients resolves the industry
// for per-client feeds.
func NewNewsHandler(news NewsDependencies, clients ClientDependencies) *NewsHandler {
	return &NewsHandler{news: news, clients: clients}
}

// HandleList handles GET /api/sns-news?platform=&industry=&limit=.
func (h *NewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "news.list", "limit")
	if err != nil {
		writeServiceError(w, "news.list", err)
		return
	}
	f := model.NewsFilter{
		Platform: r.URL.Query().Get("platform"),
		Industry: r.URL.Query().Get("industry"),
		Limit:    limit,
	}
	out, err := h.news.GetDefault(r.Context(), f)
	if err != nil {
		writeServiceError(w, "news.list", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}

// HandleForClient handles GET /api/clients/{id}/sns-news?limit=.
func (h *NewsHandler) HandleForClient(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "news.client", "limit")
	if err != nil {
		writeServiceError(w, "news.client", err)
		return
	}
	id := r.PathValue("id")
	c, err := h.clients.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "news.client", err)
		return
	}
	if c == nil {
		writeServiceError(w, "news.client", NewKind("client "+id, ErrNotFound))
		return
	}
	out, err := h.news.ForClient(r.Context(), *c, limit)
	if err != nil {
		writeServiceError(w, "news.client", err)
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(out))
}
