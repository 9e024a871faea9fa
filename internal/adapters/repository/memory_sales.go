package repository

import (
	"context"
	"fmt"
	"slices"

	model "github.com/okian/pulss/internal/domain/model"
)

// Listings below come back newest first, matching the Pulss API.

func (s *MemoryStore) Leads(_ context.Context) []model.Lead {
	s.mu.RLock()
	out := cloneAll(s.leads)
	s.mu.RUnlock()
	newestFirst(out, func(l model.Lead) model.Time { return l.UpdatedAt })
	return out
}

func (s *MemoryStore) AddLead(_ context.Context, in model.CreateLead) model.Lead {
	in = in.WithDefaults()
	now := model.At(s.now())
	l := model.Lead{
		ID:            s.nextID(),
		CompanyName:   in.CompanyName,
		Industry:      in.Industry,
		Source:        in.Source,
		Area:          in.Area,
		Owner:         in.Owner,
		Status:        in.Status,
		Score:         in.Score,
		ExpectedMRR:   in.ExpectedMRR,
		LastContactAt: in.LastContactAt,
		Memo:          in.Memo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}.Clone()

	s.mu.Lock()
	s.leads = append(s.leads, l)
	s.mu.Unlock()
	s.publishSizes()
	return l.Clone()
}

func (s *MemoryStore) UpdateLead(_ context.Context, id string, patch model.LeadPatch) (model.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.leadIndex(id)
	if i < 0 {
		return model.Lead{}, fmt.Errorf("lead %q: %w", id, ErrNotFound)
	}
	patch.Apply(&s.leads[i])
	s.leads[i].UpdatedAt = model.At(s.now())
	return s.leads[i].Clone(), nil
}

func (s *MemoryStore) Contacts(_ context.Context, leadID string) []model.ContactLog {
	s.mu.RLock()
	out := filterClone(s.contacts, func(c model.ContactLog) bool { return c.LeadID == leadID })
	s.mu.RUnlock()
	newestFirst(out, func(c model.ContactLog) model.Time { return c.ContactAt })
	return out
}

// AddContact also stamps the lead's last contact time.
func (s *MemoryStore) AddContact(_ context.Context, leadID string, in model.CreateContact) (model.ContactLog, error) {
	in = in.WithDefaults()
	now := model.At(s.now())
	at := now
	if in.ContactAt != nil && !in.ContactAt.IsZero() {
		at = *in.ContactAt
	}
	c := model.ContactLog{
		ID:        s.nextID(),
		LeadID:    leadID,
		Channel:   in.Channel,
		Content:   in.Content,
		Actor:     in.Actor,
		ContactAt: at,
		CreatedAt: now,
	}

	s.mu.Lock()
	i := s.leadIndex(leadID)
	if i < 0 {
		s.mu.Unlock()
		return model.ContactLog{}, fmt.Errorf("lead %q: %w", leadID, ErrNotFound)
	}
	s.contacts = append(s.contacts, c)
	if last := s.leads[i].LastContactAt; last == nil || last.Before(at.Time) {
		s.leads[i].LastContactAt = &at
	}
	s.mu.Unlock()
	s.publishSizes()
	return c, nil
}

func (s *MemoryStore) Proposals(_ context.Context, clientID string) []model.Proposal {
	s.mu.RLock()
	out := filterClone(s.proposals, func(p model.Proposal) bool { return p.ClientID == clientID })
	s.mu.RUnlock()
	newestFirst(out, func(p model.Proposal) model.Time { return p.UpdatedAt })
	return out
}

func (s *MemoryStore) AddProposal(_ context.Context, in model.CreateProposal) model.Proposal {
	in = in.WithDefaults()
	now := model.At(s.now())
	p := model.Proposal{
		ID:          s.nextID(),
		ClientID:    in.ClientID,
		LeadID:      in.LeadID,
		Title:       in.Title,
		Amount:      in.Amount,
		Status:      in.Status,
		SentAt:      in.SentAt,
		FollowDueAt: in.FollowDueAt,
		Memo:        in.Memo,
		FileURL:     in.FileURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}.Clone()

	s.mu.Lock()
	s.proposals = append(s.proposals, p)
	s.mu.Unlock()
	s.publishSizes()
	return p.Clone()
}

func (s *MemoryStore) UpdateProposal(_ context.Context, id string, patch model.ProposalPatch) (model.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.proposals, func(p model.Proposal) bool { return p.ID == id })
	if i < 0 {
		return model.Proposal{}, fmt.Errorf("proposal %q: %w", id, ErrNotFound)
	}
	patch.Apply(&s.proposals[i])
	s.proposals[i].UpdatedAt = model.At(s.now())
	return s.proposals[i].Clone(), nil
}

func (s *MemoryStore) Contracts(_ context.Context, clientID string) []model.Contract {
	s.mu.RLock()
	out := filterClone(s.contracts, func(c model.Contract) bool { return c.ClientID == clientID })
	s.mu.RUnlock()
	newestFirst(out, func(c model.Contract) model.Time { return c.CreatedAt })
	return out
}

func (s *MemoryStore) AddContract(_ context.Context, in model.CreateContract) model.Contract {
	now := model.At(s.now())
	c := model.Contract{
		ID:           s.nextID(),
		ClientID:     in.ClientID,
		PlanName:     in.PlanName,
		MonthlyFee:   in.MonthlyFee,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		PaymentTerms: in.PaymentTerms,
		FileURL:      in.FileURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	}.Clone()

	s.mu.Lock()
	s.contracts = append(s.contracts, c)
	s.mu.Unlock()
	s.publishSizes()
	return c.Clone()
}

func (s *MemoryStore) Notifications(_ context.Context, user string) []model.Notification {
	s.mu.RLock()
	out := filterClone(s.notifications, func(n model.Notification) bool { return n.User == user })
	s.mu.RUnlock()
	newestFirst(out, func(n model.Notification) model.Time { return n.CreatedAt })
	return out
}

func (s *MemoryStore) AddNotification(_ context.Context, user string, in model.NotificationInput) model.Notification {
	n := model.Notification{
		ID:        s.nextID(),
		User:      user,
		Title:     in.Title,
		Body:      in.Body,
		CreatedAt: model.At(s.now()),
	}

	s.mu.Lock()
	s.notifications = append(s.notifications, n)
	s.mu.Unlock()
	s.publishSizes()
	return n
}

func (s *MemoryStore) MarkNotificationRead(_ context.Context, id string) (model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.notifications, func(n model.Notification) bool { return n.ID == id })
	if i < 0 {
		return model.Notification{}, fmt.Errorf("notification %q: %w", id, ErrNotFound)
	}
	if s.notifications[i].ReadAt == nil {
		s.notifications[i].ReadAt = model.Ptr(s.now())
	}
	return s.notifications[i].Clone(), nil
}

// leadIndex must be called with mu held.
func (s *MemoryStore) leadIndex(id string) int {
	return slices.IndexFunc(s.leads, func(l model.Lead) bool { return l.ID == id })
}

// filterClone must be called with mu held.
func filterClone[T interface{ Clone() T }](in []T, keep func(T) bool) []T {
	out := make([]T, 0)
	for _, v := range in {
		if keep(v) {
			out = append(out, v.Clone())
		}
	}
	return out
}

// newestFirst sorts by key descending. Ties keep insertion order.
func newestFirst[T any](items []T, key func(T) model.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return key(b).Compare(key(a).Time)
	})
}
