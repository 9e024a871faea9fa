package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// LeadService manages sales prospects and their contact history.
type LeadService struct {
	deps
}

func leadPath(id string) string { return "/api/leads/" + url.PathEscape(id) }

// List returns every lead, most recently updated first.
func (s *LeadService) List(ctx context.Context) ([]model.Lead, error) {
	return fallback.Call(ctx, s.guard, "leads.list", fallback.Degrade,
		func(ctx context.Context) ([]model.Lead, error) {
			var out []model.Lead
			err := s.get(ctx, "leads.list", "/api/leads", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.Lead, error) {
			return s.store.Leads(ctx), nil
		},
	)
}

// Create registers a lead. Company name is required; status defaults to new.
func (s *LeadService) Create(ctx context.Context, in model.CreateLead) (model.Lead, error) {
	in = in.WithDefaults()
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	if in.CompanyName == "" {
		return model.Lead{}, fmt.Errorf("%w: company_name is required", ErrInvalidInput)
	}
	if !in.Status.Valid() {
		return model.Lead{}, fmt.Errorf("%w: status %q", ErrInvalidInput, in.Status)
	}
	return fallback.Call(ctx, s.guard, "leads.create", fallback.Degrade,
		func(ctx context.Context) (model.Lead, error) {
			var out model.Lead
			err := s.post(ctx, "leads.create", "/api/leads", in, &out)
			return out, err
		},
		func(ctx context.Context) (model.Lead, error) {
			return s.store.AddLead(ctx, in), nil
		},
	)
}

// Update merges patch into the lead.
func (s *LeadService) Update(ctx context.Context, id string, patch model.LeadPatch) (model.Lead, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Lead{}, fmt.Errorf("%w: status %q", ErrInvalidInput, *patch.Status)
	}
	if patch.CompanyName != nil && strings.TrimSpace(*patch.CompanyName) == "" {
		return model.Lead{}, fmt.Errorf("%w: company_name cannot be blank", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "leads.update", fallback.Degrade,
		func(ctx context.Context) (model.Lead, error) {
			var out model.Lead
			err := s.put(ctx, "leads.update", leadPath(id), patch, &out)
			return out, err
		},
		func(ctx context.Context) (model.Lead, error) {
			l, err := s.store.UpdateLead(ctx, id, patch)
			if err != nil {
				return model.Lead{}, fmt.Errorf("update lead: %w", err)
			}
			return l, nil
		},
	)
}

// Contacts returns the lead's contact log, latest first.
func (s *LeadService) Contacts(ctx context.Context, leadID string) ([]model.ContactLog, error) {
	return fallback.Call(ctx, s.guard, "leads.contacts", fallback.Degrade,
		func(ctx context.Context) ([]model.ContactLog, error) {
			var out []model.ContactLog
			err := s.get(ctx, "leads.contacts", leadPath(leadID)+"/contacts", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.ContactLog, error) {
			return s.store.Contacts(ctx, leadID), nil
		},
	)
}

// AddContact logs a touchpoint. Content is required; the channel defaults to
// a call and the time to now.
func (s *LeadService) AddContact(ctx context.Context, leadID string, in model.CreateContact) (model.ContactLog, error) {
	in = in.WithDefaults()
	if strings.TrimSpace(in.Content) == "" {
		return model.ContactLog{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "leads.add_contact", fallback.Degrade,
		func(ctx context.Context) (model.ContactLog, error) {
			var out model.ContactLog
			err := s.post(ctx, "leads.add_contact", leadPath(leadID)+"/contacts", in, &out)
			return out, err
		},
		func(ctx context.Context) (model.ContactLog, error) {
			c, err := s.store.AddContact(ctx, leadID, in)
			if err != nil {
				return model.ContactLog{}, fmt.Errorf("add contact: %w", err)
			}
			return c, nil
		},
	)
}
