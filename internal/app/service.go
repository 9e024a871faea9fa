// Package service implements the dashboard operations on top of the Pulss
// API, degrading to local data when the API is unreachable.
package service

import (
	"context"
	"net/http"
	"sync"
	"time"

	repository "github.com/okian/pulss/internal/adapters/repository"
	"github.com/okian/pulss/internal/adapters/upstream"
	"github.com/okian/pulss/pkg/fallback"
	"github.com/okian/pulss/pkg/logger"
)

// API is the subset of the upstream client the services need.
type API interface {
	Do(ctx context.Context, op, method, path string, body, out any) error
}

// deps is shared by every sub-service.
type deps struct {
	api   API
	store repository.Store
	guard *fallback.Guard
	log   logger.Logger
}

func (d deps) get(ctx context.Context, op, path string, out any) error {
	return d.api.Do(ctx, op, http.MethodGet, path, nil, out)
}

func (d deps) post(ctx context.Context, op, path string, body, out any) error {
	return d.api.Do(ctx, op, http.MethodPost, path, body, out)
}

func (d deps) put(ctx context.Context, op, path string, body, out any) error {
	return d.api.Do(ctx, op, http.MethodPut, path, body, out)
}

// Dashboard bundles the per-area services behind one lifecycle.
type Dashboard struct {
	mu sync.RWMutex

	api             API
	store           repository.Store
	logger          logger.Logger
	fallbackEnabled bool
	newsLimit       int
	chatLimit       int

	clients       *ClientService
	tasks         *TaskService
	schedules     *ScheduleService
	news          *NewsService
	suggestions   *SuggestionService
	chat          *ChatService
	board         *BoardService
	leads         *LeadService
	proposals     *ProposalService
	contracts     *ContractService
	notifications *NotificationService

	started bool
}

// Option applies a configuration option to the Dashboard.
type Option func(*Dashboard)

// WithAPI sets the upstream client. Defaults to upstream.New("").
func WithAPI(api API) Option {
	return func(d *Dashboard) {
		if api != nil {
			d.api = api
		}
	}
}

// WithStore sets the fallback store. Defaults to a fresh seeded MemoryStore.
func WithStore(store repository.Store) Option {
	return func(d *Dashboard) {
		if store != nil {
			d.store = store
		}
	}
}

// WithLogger sets a custom logger for the dashboard.
func WithLogger(l logger.Logger) Option {
	return func(d *Dashboard) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithFallbackEnabled toggles degrading reads to local data.
func WithFallbackEnabled(enabled bool) Option {
	return func(d *Dashboard) { d.fallbackEnabled = enabled }
}

// WithNewsDefaultLimit sets the limit used when a news query names none.
func WithNewsDefaultLimit(n int) Option {
	return func(d *Dashboard) {
		if n > 0 {
			d.newsLimit = n
		}
	}
}

// WithChatSessionLimit caps how many intake session ids the chat service
// tracks. Defaults to DefaultChatSessionLimit.
func WithChatSessionLimit(n int) Option {
	return func(d *Dashboard) {
		if n > 0 {
			d.chatLimit = n
		}
	}
}

// New constructs a Dashboard. Sub-services are usable immediately.
func New(opts ...Option) *Dashboard {
	d := &Dashboard{
		fallbackEnabled: true,
		newsLimit:       DefaultNewsLimit,
		logger:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.api == nil {
		d.api = upstream.New("", upstream.WithLogger(d.logger.Named("upstream")))
	}
	if d.store == nil {
		d.store = repository.NewMemoryStore()
	}

	base := deps{
		api:   d.api,
		store: d.store,
		guard: fallback.NewGuard(
			fallback.WithLogger(d.logger.Named("fallback")),
			fallback.WithDisabled(!d.fallbackEnabled),
		),
		log: d.logger,
	}
	d.clients = &ClientService{deps: base}
	d.tasks = &TaskService{deps: base}
	d.schedules = &ScheduleService{deps: base}
	d.news = &NewsService{deps: base, defaultLimit: d.newsLimit}
	d.suggestions = &SuggestionService{deps: base}
	d.chat = newChatService(base, d.chatLimit)
	d.board = &BoardService{deps: base}
	d.leads = &LeadService{deps: base}
	d.proposals = &ProposalService{deps: base}
	d.contracts = &ContractService{deps: base}
	d.notifications = &NotificationService{deps: base}
	return d
}

// StartupPingTimeout bounds the reachability check in Start so a blackholed
// API host cannot hold up serving.
const StartupPingTimeout = 2 * time.Second

// Start marks the dashboard as serving and reports whether the API answers.
// An unreachable API is not an error; reads degrade until it returns.
func (d *Dashboard) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, StartupPingTimeout)
	defer cancel()
	if err := d.ping(pingCtx); err != nil {
		d.logger.Warn(ctx, "pulss api not reachable at startup, serving fallback data",
			logger.Error(err),
			logger.Bool("fallbackEnabled", d.fallbackEnabled),
		)
	}
	d.started = true
	d.logger.Info(ctx, "dashboard service started", logger.Bool("fallbackEnabled", d.fallbackEnabled))
	return nil
}

// Stop marks the dashboard as stopped.
func (d *Dashboard) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return
	}
	d.started = false
	d.logger.Info(context.Background(), "dashboard service stopped")
}

// Ping checks GET /api/health.
func (d *Dashboard) Ping(ctx context.Context) error { return d.ping(ctx) }

func (d *Dashboard) ping(ctx context.Context) error {
	return d.api.Do(ctx, "health", http.MethodGet, "/api/health", nil, nil)
}

func (d *Dashboard) Clients() *ClientService             { return d.clients }
func (d *Dashboard) Tasks() *TaskService                 { return d.tasks }
func (d *Dashboard) Schedules() *ScheduleService         { return d.schedules }
func (d *Dashboard) News() *NewsService                  { return d.news }
func (d *Dashboard) Suggestions() *SuggestionService     { return d.suggestions }
func (d *Dashboard) Chat() *ChatService                  { return d.chat }
func (d *Dashboard) Board() *BoardService                { return d.board }
func (d *Dashboard) Leads() *LeadService                 { return d.leads }
func (d *Dashboard) Proposals() *ProposalService         { return d.proposals }
func (d *Dashboard) Contracts() *ContractService         { return d.contracts }
func (d *Dashboard) Notifications() *NotificationService { return d.notifications }

// GetStats returns service statistics for monitoring.
func (d *Dashboard) GetStats() map[string]interface{} {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return map[string]interface{}{
		"started":         d.started,
		"fallbackEnabled": d.fallbackEnabled,
		"newsLimit":       d.newsLimit,
		"openChats":       d.chat.OpenSessions(),
		"fallbackStore":   d.store.Count(context.Background()),
	}
}
