package service

import (
	"context"
	"fmt"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// ContractService records signed agreements.
type ContractService struct {
	deps
}

// List returns the client's contracts, newest first.
func (s *ContractService) List(ctx context.Context, clientID string) ([]model.Contract, error) {
	return fallback.Call(ctx, s.guard, "contracts.list", fallback.Degrade,
		func(ctx context.Context) ([]model.Contract, error) {
			var out []model.Contract
			err := s.get(ctx, "contracts.list", clientPath(clientID)+"/contracts", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.Contract, error) {
			return s.store.Contracts(ctx, clientID), nil
		},
	)
}

// Create records a contract. Client id is required and an end date may not
// precede the start date.
func (s *ContractService) Create(ctx context.Context, in model.CreateContract) (model.Contract, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return model.Contract{}, fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(in.StartDate.Time) {
		return model.Contract{}, fmt.Errorf("%w: end_date precedes start_date", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "contracts.create", fallback.Degrade,
		func(ctx context.Context) (model.Contract, error) {
			var out model.Contract
			err := s.post(ctx, "contracts.create", "/api/contracts", in, &out)
			return out, err
		},
		func(ctx context.Context) (model.Contract, error) {
			return s.store.AddContract(ctx, in), nil
		},
	)
}
