// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	service "github.com/okian/pulss/internal/app"
	model "github.com/okian/pulss/internal/domain/model"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// ClientDependencies is the client registry as seen by the handlers.
type ClientDependencies interface {
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, id string) (*model.Client, error)
	Create(ctx context.Context, in model.CreateClient) (model.Client, error)
	Update(ctx context.Context, id string, patch model.ClientPatch) (model.Client, error)
	ToggleStatus(ctx context.Context, id string) (model.Client, error)
	GeneratePulseURL(ctx context.Context, clientID string) (string, error)
	SubmitPulseResponse(ctx context.Context, answers model.PulseAnswers) (model.PulseResponse, error)
}

// TaskDependencies covers per-client tasks.
type TaskDependencies interface {
	List(ctx context.Context, clientID string, category model.TaskCategory) ([]model.Task, error)
	Create(ctx context.Context, clientID string, in model.CreateTask) (model.Task, error)
	Update(ctx context.Context, taskID string, patch model.TaskPatch) (model.Task, error)
}

// ScheduleDependencies covers calendar events.
type ScheduleDependencies interface {
	List(ctx context.Context, q model.ScheduleQuery) ([]model.ScheduleEvent, error)
	Create(ctx context.Context, in model.ScheduleInput) (model.ScheduleEvent, error)
	Update(ctx context.Context, id string, in model.ScheduleInput) (model.ScheduleEvent, error)
	Delete(ctx context.Context, id string) error
}

// NewsDependencies covers the news feed.
type NewsDependencies interface {
	GetDefault(ctx context.Context, f model.NewsFilter) ([]model.SnsNewsItem, error)
	ForClient(ctx context.Context, c model.Client, limit int) ([]model.SnsNewsItem, error)
}

// SuggestionDependencies covers AI drafts.
type SuggestionDependencies interface {
	List(ctx context.Context, clientID string) ([]model.AiSuggestion, error)
	Generate(ctx context.Context, clientID string, hint map[string]any) (model.AiSuggestion, error)
}

// ChatDependencies covers the intake chat proxy.
type ChatDependencies interface {
	StartFromLink(ctx context.Context, clientID, token string) (model.ChatStart, error)
	SendMessage(ctx context.Context, sessionID, text string) (model.ChatReply, error)
}

// BoardDependencies covers the director board.
type BoardDependencies interface {
	List(ctx context.Context) ([]model.BoardItem, error)
}

// LeadDependencies covers the sales pipeline.
type LeadDependencies interface {
	List(ctx context.Context) ([]model.Lead, error)
	Create(ctx context.Context, in model.CreateLead) (model.Lead, error)
	Update(ctx context.Context, id string, patch model.LeadPatch) (model.Lead, error)
	Contacts(ctx context.Context, leadID string) ([]model.ContactLog, error)
	AddContact(ctx context.Context, leadID string, in model.CreateContact) (model.ContactLog, error)
}

// ProposalDependencies covers proposals.
type ProposalDependencies interface {
	List(ctx context.Context, clientID string) ([]model.Proposal, error)
	Create(ctx context.Context, in model.CreateProposal) (model.Proposal, error)
	Update(ctx context.Context, id string, patch model.ProposalPatch) (model.Proposal, error)
}

// ContractDependencies covers contracts.
type ContractDependencies interface {
	List(ctx context.Context, clientID string) ([]model.Contract, error)
	Create(ctx context.Context, in model.CreateContract) (model.Contract, error)
}

// NotificationDependencies covers in-app notifications.
type NotificationDependencies interface {
	List(ctx context.Context, user string) ([]model.Notification, error)
	Create(ctx context.Context, user string, in model.NotificationInput) (model.Notification, error)
	MarkRead(ctx context.Context, id string) (model.Notification, error)
}

// Pinger reports whether the Pulss API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies bundles what the handlers call. Keeping each area behind its
// own interface leaves the handler layer loosely coupled to the services.
type Dependencies struct {
	Clients       ClientDependencies
	Tasks         TaskDependencies
	Schedules     ScheduleDependencies
	News          NewsDependencies
	Suggestions   SuggestionDependencies
	Chat          ChatDependencies
	Board         BoardDependencies
	Leads         LeadDependencies
	Proposals     ProposalDependencies
	Contracts     ContractDependencies
	Notifications NotificationDependencies
	Upstream      Pinger
	Stats         StatsProvider
}

// DependenciesFrom wires a Dashboard into the handler bundle.
func DependenciesFrom(d *service.Dashboard) Dependencies {
	return Dependencies{
		Clients:       d.Clients(),
		Tasks:         d.Tasks(),
		Schedules:     d.Schedules(),
		News:          d.News(),
		Suggestions:   d.Suggestions(),
		Chat:          d.Chat(),
		Board:         d.Board(),
		Leads:         d.Leads(),
		Proposals:     d.Proposals(),
		Contracts:     d.Contracts(),
		Notifications: d.Notifications(),
		Upstream:      d,
		Stats:         d,
	}
}

// Server wires HTTP routes for the dashboard API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	clientsHandler       *ClientsHandler
	tasksHandler         *TasksHandler
	schedulesHandler     *SchedulesHandler
	newsHandler          *NewsHandler
	suggestionHandler    *SuggestionsHandler
	chatHandler          *ChatHandler
	boardHandler         *BoardHandler
	leadsHandler         *LeadsHandler
	dealsHandler         *DealsHandler
	notificationsHandler *NotificationsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:        NewHealthHandler(deps.Upstream),
		statsHandler:         NewStatsHandler(deps.Stats),
		clientsHandler:       NewClientsHandler(deps.Clients),
		tasksHandler:         NewTasksHandler(deps.Tasks),
		schedulesHandler:     NewSchedulesHandler(deps.Schedules),
		newsHandler:          NewNewsHandler(deps.News, deps.Clients),
		suggestionHandler:    NewSuggestionsHandler(deps.Suggestions),
		chatHandler:          NewChatHandler(deps.Chat),
		boardHandler:         NewBoardHandler(deps.Board),
		leadsHandler:         NewLeadsHandler(deps.Leads),
		dealsHandler:         NewDealsHandler(deps.Proposals, deps.Contracts),
		notificationsHandler: NewNotificationsHandler(deps.Notifications),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /readyz", MetricsMiddleware(s.healthHandler.HandleReady, "readyz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	c := s.clientsHandler
	mux.HandleFunc("GET /api/clients", MetricsMiddleware(c.HandleList, "clients.list"))
	mux.HandleFunc("POST /api/clients", MetricsMiddleware(c.HandleCreate, "clients.create"))
	mux.HandleFunc("GET /api/clients/{id}", MetricsMiddleware(c.HandleGet, "clients.get"))
	mux.HandleFunc("PUT /api/clients/{id}", MetricsMiddleware(c.HandleUpdate, "clients.update"))
	mux.HandleFunc("POST /api/clients/{id}/toggle-status", MetricsMiddleware(c.HandleToggleStatus, "clients.toggle_status"))
	mux.HandleFunc("POST /api/clients/{id}/pulse-link", MetricsMiddleware(c.HandlePulseLink, "clients.pulse_link"))
	mux.HandleFunc("POST /api/pulse-responses", MetricsMiddleware(c.HandleSubmitPulse, "pulse.submit"))

	t := s.tasksHandler
	mux.HandleFunc("GET /api/clients/{id}/tasks", MetricsMiddleware(t.HandleList, "tasks.list"))
	mux.HandleFunc("POST /api/clients/{id}/tasks", MetricsMiddleware(t.HandleCreate, "tasks.create"))
	mux.HandleFunc("PUT /api/tasks/{id}", MetricsMiddleware(t.HandleUpdate, "tasks.update"))

	sg := s.suggestionHandler
	mux.HandleFunc("GET /api/clients/{id}/ai-suggestions", MetricsMiddleware(sg.HandleList, "suggestions.list"))
	mux.HandleFunc("POST /api/clients/{id}/ai-suggestions", MetricsMiddleware(sg.HandleGenerate, "suggestions.generate"))

	sc := s.schedulesHandler
	mux.HandleFunc("GET /api/schedules", MetricsMiddleware(sc.HandleList, "schedules.list"))
	mux.HandleFunc("POST /api/schedules", MetricsMiddleware(sc.HandleCreate, "schedules.create"))
	mux.HandleFunc("PUT /api/schedules/{id}", MetricsMiddleware(sc.HandleUpdate, "schedules.update"))
	mux.HandleFunc("DELETE /api/schedules/{id}", MetricsMiddleware(sc.HandleDelete, "schedules.delete"))

	n := s.newsHandler
	mux.HandleFunc("GET /api/sns-news", MetricsMiddleware(n.HandleList, "news.list"))
	mux.HandleFunc("GET /api/clients/{id}/sns-news", MetricsMiddleware(n.HandleForClient, "news.client"))

	mux.HandleFunc("GET /api/director-board/clients", MetricsMiddleware(s.boardHandler.HandleList, "board.list"))

	ch := s.chatHandler
	mux.HandleFunc("POST /api/pulss-chat/start-from-link/{clientId}/{token}", MetricsMiddleware(ch.HandleStart, "chat.start"))
	mux.HandleFunc("POST /api/pulss-chat/sessions/{sessionId}/messages", MetricsMiddleware(ch.HandleSend, "chat.send"))

	l := s.leadsHandler
	mux.HandleFunc("GET /api/leads", MetricsMiddleware(l.HandleList, "leads.list"))
	mux.HandleFunc("POST /api/leads", MetricsMiddleware(l.HandleCreate, "leads.create"))
	mux.HandleFunc("PUT /api/leads/{id}", MetricsMiddleware(l.HandleUpdate, "leads.update"))
	mux.HandleFunc("GET /api/leads/{id}/contacts", MetricsMiddleware(l.HandleContacts, "leads.contacts"))
	mux.HandleFunc("POST /api/leads/{id}/contacts", MetricsMiddleware(l.HandleAddContact, "leads.add_contact"))

	dl := s.dealsHandler
	mux.HandleFunc("GET /api/clients/{id}/proposals", MetricsMiddleware(dl.HandleListProposals, "proposals.list"))
	mux.HandleFunc("POST /api/proposals", MetricsMiddleware(dl.HandleCreateProposal, "proposals.create"))
	mux.HandleFunc("PUT /api/proposals/{id}", MetricsMiddleware(dl.HandleUpdateProposal, "proposals.update"))
	mux.HandleFunc("GET /api/clients/{id}/contracts", MetricsMiddleware(dl.HandleListContracts, "contracts.list"))
	mux.HandleFunc("POST /api/contracts", MetricsMiddleware(dl.HandleCreateContract, "contracts.create"))

	nt := s.notificationsHandler
	mux.HandleFunc("GET /api/notifications", MetricsMiddleware(nt.HandleList, "notifications.list"))
	mux.HandleFunc("POST /api/notifications", MetricsMiddleware(nt.HandleCreate, "notifications.create"))
	mux.HandleFunc("POST /api/notifications/{id}/read", MetricsMiddleware(nt.HandleMarkRead, "notifications.mark_read"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps a service failure onto a status. Anything not
// recognized is an upstream failure the service chose to propagate.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, service.ErrSessionClosed):
		writeError(w, http.StatusConflict, "session_closed", err)
	case errors.Is(err, service.ErrInvalidLink):
		writeError(w, http.StatusNotFound, "invalid_link", err)
	case service.IsNotFound(err), errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusBadGateway, "upstream_error", fmt.Errorf("%s: %w", op, err))
	}
}

// decodeJSON reads a bounded JSON body into v. An empty body leaves v as is.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return WrapKind(op, ErrBadRequest, err)
	}
	return nil
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(r *http.Request, op, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, WrapKind(op, ErrBadRequest, fmt.Errorf("%s must be a non-negative integer", name))
	}
	return n, nil
}
