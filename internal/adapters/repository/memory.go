package repository

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/metrics"
)

// Collection names reported by Count and the store size gauge.
const (
	CollectionClients       = "clients"
	CollectionTasks         = "tasks"
	CollectionSuggestions   = "ai_suggestions"
	CollectionNews          = "sns_news"
	CollectionPulseLinks    = "pulse_links"
	CollectionLeads         = "leads"
	CollectionContacts      = "contact_logs"
	CollectionProposals     = "proposals"
	CollectionContracts     = "contracts"
	CollectionNotifications = "notifications"
)

const defaultPulseBaseURL = "https://pulse.example.com/form"

// MemoryStore is the in-process Store. Each instance owns its records, so
// tests and servers never share state.
type MemoryStore struct {
	mu sync.RWMutex

	clients     []model.Client
	tasks       []model.Task
	suggestions []model.AiSuggestion
	news        []model.SnsNewsItem
	links       map[string]string // token -> client id

	leads         []model.Lead
	contacts      []model.ContactLog
	proposals     []model.Proposal
	contracts     []model.Contract
	notifications []model.Notification

	now          func() time.Time
	nextID       func() string
	seed         bool
	pulseBaseURL string
}

// NewMemoryStore builds a store loaded with the demo seed unless WithSeed(false).
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		links:        make(map[string]string),
		now:          func() time.Time { return time.Now().UTC() },
		nextID:       uuid.NewString,
		seed:         true,
		pulseBaseURL: defaultPulseBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		s.loadSeed(s.now())
	}
	s.publishSizes()
	return s
}

var _ Store = (*MemoryStore)(nil)

func (s *MemoryStore) Clients(_ context.Context) []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.clients)
}

func (s *MemoryStore) Client(_ context.Context, id string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.clientIndex(id)
	if i < 0 {
		return model.Client{}, fmt.Errorf("client %q: %w", id, ErrNotFound)
	}
	return s.clients[i].Clone(), nil
}

func (s *MemoryStore) AddClient(_ context.Context, in model.CreateClient) model.Client {
	now := model.At(s.now())
	phase := in.Phase
	if phase == "" {
		phase = model.PhaseHearing
	}
	zero := 0.0
	c := model.Client{
		ID:                 s.nextID(),
		Name:               in.Name,
		Industry:           in.Industry,
		Status:             in.Status,
		Phase:              phase,
		SalesOwner:         in.SalesOwner,
		DirectorOwner:      in.DirectorOwner,
		SlackURL:           in.SlackURL,
		Memo:               in.Memo,
		LastContactAt:      in.LastContactAt.Clone(),
		CreatedAt:          now,
		UpdatedAt:          now,
		OnboardingProgress: &zero,
		HasAlert:           false,
	}

	s.mu.Lock()
	s.clients = append(s.clients, c)
	s.mu.Unlock()
	s.publishSizes()
	return c.Clone()
}

func (s *MemoryStore) UpdateClient(_ context.Context, id string, patch model.ClientPatch) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		return model.Client{}, fmt.Errorf("client %q: %w", id, ErrNotFound)
	}
	patch.Apply(&s.clients[i])
	s.clients[i].UpdatedAt = model.At(s.now())
	return s.clients[i].Clone(), nil
}

func (s *MemoryStore) MintPulseLink(_ context.Context, clientID string) model.PulseLink {
	token := strings.ReplaceAll(s.nextID(), "-", "")
	if len(token) > 16 {
		token = token[:16]
	}
	s.mu.Lock()
	s.links[token] = clientID
	s.mu.Unlock()
	s.publishSizes()

	link := fmt.Sprintf("%s?token=%s&cid=%s", s.pulseBaseURL, token, url.QueryEscape(clientID))
	return model.PulseLink{URL: link, Token: token}
}

func (s *MemoryStore) SubmitPulse(_ context.Context, a model.PulseAnswers) (model.PulseResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clientID, ok := s.links[a.Token]
	if !ok {
		return model.PulseResponse{}, ErrInvalidToken
	}
	i := s.clientIndex(clientID)
	if i < 0 {
		return model.PulseResponse{}, fmt.Errorf("client %q: %w", clientID, ErrNotFound)
	}
	now := model.At(s.now())
	resp := model.PulseResponse{
		ID:                s.nextID(),
		ClientID:          clientID,
		Problem:           a.Problem,
		CurrentSNS:        a.CurrentSNS,
		Target:            a.Target,
		ProductSummary:    a.ProductSummary,
		StrengthsUSP:      a.StrengthsUSP,
		BrandStory:        a.BrandStory,
		ReferenceAccounts: a.ReferenceAccounts,
		RawPayload:        a.RawPayload,
		SubmittedAt:       now,
	}.Clone()
	s.clients[i].LatestPulseResponse = &resp
	s.clients[i].UpdatedAt = now
	return resp.Clone(), nil
}

func (s *MemoryStore) Tasks(_ context.Context, clientID string, category model.TaskCategory) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasksFor(clientID, category)
}

func (s *MemoryStore) AddTask(_ context.Context, clientID string, in model.CreateTask) model.Task {
	in = in.WithDefaults()
	now := model.At(s.now())
	t := model.Task{
		ID:          s.nextID(),
		ClientID:    clientID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		DueDate:     in.DueDate.Clone(),
		Assignee:    in.Assignee,
		Source:      in.Source,
		TemplateID:  in.TemplateID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.refreshDerived(clientID)
	s.mu.Unlock()
	s.publishSizes()
	return t.Clone()
}

func (s *MemoryStore) UpdateTask(_ context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %q: %w", id, ErrNotFound)
	}
	patch.Apply(&s.tasks[i])
	s.tasks[i].UpdatedAt = model.At(s.now())
	s.refreshDerived(s.tasks[i].ClientID)
	return s.tasks[i].Clone(), nil
}

func (s *MemoryStore) Suggestions(_ context.Context, clientID string) []model.AiSuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.AiSuggestion, 0)
	for _, sg := range s.suggestions {
		if sg.ClientID == clientID {
			out = append(out, sg)
		}
	}
	return out
}

func (s *MemoryStore) AddSuggestion(_ context.Context, sg model.AiSuggestion) model.AiSuggestion {
	now := model.At(s.now())
	sg.ID = s.nextID()
	sg.CreatedAt = now
	sg.UpdatedAt = now

	s.mu.Lock()
	s.suggestions = append(s.suggestions, sg)
	s.mu.Unlock()
	s.publishSizes()
	return sg
}

func (s *MemoryStore) News(_ context.Context) []model.SnsNewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.news)
}

func (s *MemoryStore) Board(_ context.Context) []model.BoardItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BoardItem, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, model.BoardItemFromClient(c.Clone(), 0))
	}
	return out
}

func (s *MemoryStore) Count(_ context.Context) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked()
}

func (s *MemoryStore) countLocked() map[string]int {
	return map[string]int{
		CollectionClients:       len(s.clients),
		CollectionTasks:         len(s.tasks),
		CollectionSuggestions:   len(s.suggestions),
		CollectionNews:          len(s.news),
		CollectionPulseLinks:    len(s.links),
		CollectionLeads:         len(s.leads),
		CollectionContacts:      len(s.contacts),
		CollectionProposals:     len(s.proposals),
		CollectionContracts:     len(s.contracts),
		CollectionNotifications: len(s.notifications),
	}
}

func (s *MemoryStore) publishSizes() {
	s.mu.RLock()
	counts := s.countLocked()
	s.mu.RUnlock()
	for name, n := range counts {
		metrics.UpdateFallbackStoreSize(name, n)
	}
}

// clientIndex must be called with mu held.
func (s *MemoryStore) clientIndex(id string) int {
	return slices.IndexFunc(s.clients, func(c model.Client) bool { return c.ID == id })
}

// tasksFor must be called with mu held.
func (s *MemoryStore) tasksFor(clientID string, category model.TaskCategory) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.ClientID == clientID && (category == "" || t.Category == category) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// cloneAll copies records so callers never alias store memory.
func cloneAll[T interface{ Clone() T }](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

// refreshDerived recomputes the client's progress and alert after its tasks
// change. Must be called with mu held for writing.
func (s *MemoryStore) refreshDerived(clientID string) {
	i := s.clientIndex(clientID)
	if i < 0 {
		return
	}
	tasks := s.tasksFor(clientID, "")
	c := &s.clients[i]
	c.OnboardingProgress = model.OnboardingProgress(tasks)
	c.HasAlert = model.HasAlert(*c, tasks, s.now())
}
