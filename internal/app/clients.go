package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	repository "github.com/okian/pulss/internal/adapters/repository"
	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// ClientService manages clients, their lifecycle fields and intake links.
type ClientService struct {
	deps
}

func clientPath(id string) string { return "/api/clients/" + url.PathEscape(id) }

// List returns every client, or the fallback list when the API is down.
func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return fallback.Call(ctx, s.guard, "clients.list", fallback.Degrade,
		func(ctx context.Context) ([]model.Client, error) {
			var out []model.Client
			err := s.get(ctx, "clients.list", "/api/clients", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.Client, error) {
			return s.store.Clients(ctx), nil
		},
	)
}

// Get returns the client, or nil when it is absent from fallback data.
func (s *ClientService) Get(ctx context.Context, id string) (*model.Client, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "clients.get", fallback.Degrade,
		func(ctx context.Context) (*model.Client, error) {
			var out model.Client
			if err := s.get(ctx, "clients.get", clientPath(id), &out); err != nil {
				return nil, err
			}
			return &out, nil
		},
		func(ctx context.Context) (*model.Client, error) {
			c, err := s.store.Client(ctx, id)
			if errors.Is(err, repository.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return &c, nil
		},
	)
}

// Create registers a client. Name, industry and a valid status are required;
// phase defaults to hearing.
func (s *ClientService) Create(ctx context.Context, in model.CreateClient) (model.Client, error) {
	if err := validateCreateClient(&in); err != nil {
		return model.Client{}, err
	}
	return fallback.Call(ctx, s.guard, "clients.create", fallback.Degrade,
		func(ctx context.Context) (model.Client, error) {
			var out model.Client
			err := s.post(ctx, "clients.create", "/api/clients", in, &out)
			return out, err
		},
		func(ctx context.Context) (model.Client, error) {
			return s.store.AddClient(ctx, in), nil
		},
	)
}

func validateCreateClient(in *model.CreateClient) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Industry = strings.TrimSpace(in.Industry)
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case in.Industry == "":
		return fmt.Errorf("%w: industry is required", ErrInvalidInput)
	case !in.Status.Valid():
		return fmt.Errorf("%w: status %q", ErrInvalidInput, in.Status)
	}
	if in.Phase == "" {
		in.Phase = model.PhaseHearing
	}
	if !in.Phase.Valid() {
		return fmt.Errorf("%w: phase %q", ErrInvalidInput, in.Phase)
	}
	return nil
}

// Update merges patch into the client. In fallback mode an unknown id is an
// error.
func (s *ClientService) Update(ctx context.Context, id string, patch model.ClientPatch) (model.Client, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Client{}, fmt.Errorf("%w: status %q", ErrInvalidInput, *patch.Status)
	}
	if patch.Phase != nil && !patch.Phase.Valid() {
		return model.Client{}, fmt.Errorf("%w: phase %q", ErrInvalidInput, *patch.Phase)
	}
	return fallback.Call(ctx, s.guard, "clients.update", fallback.Degrade,
		func(ctx context.Context) (model.Client, error) {
			var out model.Client
			err := s.put(ctx, "clients.update", clientPath(id), patch, &out)
			return out, err
		},
		func(ctx context.Context) (model.Client, error) {
			return s.store.UpdateClient(ctx, id, patch)
		},
	)
}

// UpdateStatus sets only the status.
func (s *ClientService) UpdateStatus(ctx context.Context, id string, status model.ClientStatus) (model.Client, error) {
	return s.Update(ctx, id, model.ClientPatch{Status: &status})
}

// UpdatePhase sets only the phase. Any phase may follow any other.
func (s *ClientService) UpdatePhase(ctx context.Context, id string, phase model.ClientPhase) (model.Client, error) {
	return s.Update(ctx, id, model.ClientPatch{Phase: &phase})
}

// ToggleStatus flips pre_contract and contracted.
func (s *ClientService) ToggleStatus(ctx context.Context, id string) (model.Client, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return model.Client{}, err
	}
	if c == nil {
		return model.Client{}, fmt.Errorf("client %q: %w", id, ErrNotFound)
	}
	return s.UpdateStatus(ctx, id, c.Status.Toggle())
}

// GeneratePulseURL requests a shareable intake link. The fallback link is a
// placeholder and carries no real credential.
func (s *ClientService) GeneratePulseURL(ctx context.Context, clientID string) (string, error) {
	link, err := fallback.Call(ctx, s.guard, "clients.pulse_link", fallback.Degrade,
		func(ctx context.Context) (model.PulseLink, error) {
			var out model.PulseLink
			err := s.post(ctx, "clients.pulse_link", clientPath(clientID)+"/pulse-link", nil, &out)
			return out, err
		},
		func(ctx context.Context) (model.PulseLink, error) {
			return s.store.MintPulseLink(ctx, clientID), nil
		},
	)
	return link.URL, err
}

// SubmitPulseResponse records intake answers against the link's client. The
// latest submission replaces any earlier one.
func (s *ClientService) SubmitPulseResponse(ctx context.Context, answers model.PulseAnswers) (model.PulseResponse, error) {
	if strings.TrimSpace(answers.Token) == "" {
		return model.PulseResponse{}, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "pulse.submit", fallback.Degrade,
		func(ctx context.Context) (model.PulseResponse, error) {
			var out model.PulseResponse
			err := s.post(ctx, "pulse.submit", "/api/pulse-responses", answers, &out)
			return out, err
		},
		func(ctx context.Context) (model.PulseResponse, error) {
			return s.store.SubmitPulse(ctx, answers)
		},
	)
}
