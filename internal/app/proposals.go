package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// ProposalService tracks offers sent to clients and leads.
type ProposalService struct {
	deps
}

// List returns the client's proposals, most recently updated first.
func (s *ProposalService) List(ctx context.Context, clientID string) ([]model.Proposal, error) {
	return fallback.Call(ctx, s.guard, "proposals.list", fallback.Degrade,
		func(ctx context.Context) ([]model.Proposal, error) {
			var out []model.Proposal
			err := s.get(ctx, "proposals.list", clientPath(clientID)+"/proposals", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.Proposal, error) {
			return s.store.Proposals(ctx, clientID), nil
		},
	)
}

// Create drafts a proposal. Title is required; status defaults to draft.
func (s *ProposalService) Create(ctx context.Context, in model.CreateProposal) (model.Proposal, error) {
	in = in.WithDefaults()
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return model.Proposal{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !in.Status.Valid() {
		return model.Proposal{}, fmt.Errorf("%w: status %q", ErrInvalidInput, in.Status)
	}
	return fallback.Call(ctx, s.guard, "proposals.create", fallback.Degrade,
		func(ctx context.Context) (model.Proposal, error) {
			var out model.Proposal
			err := s.post(ctx, "proposals.create", "/api/proposals", in, &out)
			return out, err
		},
		func(ctx context.Context) (model.Proposal, error) {
			return s.store.AddProposal(ctx, in), nil
		},
	)
}

// Update merges patch into the proposal.
func (s *ProposalService) Update(ctx context.Context, id string, patch model.ProposalPatch) (model.Proposal, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return model.Proposal{}, fmt.Errorf("%w: status %q", ErrInvalidInput, *patch.Status)
	}
	return fallback.Call(ctx, s.guard, "proposals.update", fallback.Degrade,
		func(ctx context.Context) (model.Proposal, error) {
			var out model.Proposal
			err := s.put(ctx, "proposals.update", "/api/proposals/"+url.PathEscape(id), patch, &out)
			return out, err
		},
		func(ctx context.Context) (model.Proposal, error) {
			p, err := s.store.UpdateProposal(ctx, id, patch)
			if err != nil {
				return model.Proposal{}, fmt.Errorf("update proposal: %w", err)
			}
			return p, nil
		},
	)
}
