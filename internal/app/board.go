package service

import (
	"context"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// BoardService serves the director board summary.
type BoardService struct {
	deps
}

// List returns one row per client. Fallback rows report zero open tasks.
func (s *BoardService) List(ctx context.Context) ([]model.BoardItem, error) {
	return fallback.Call(ctx, s.guard, "board.list", fallback.Degrade,
		func(ctx context.Context) ([]model.BoardItem, error) {
			var out []model.BoardItem
			err := s.get(ctx, "board.list", "/api/director-board/clients", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.BoardItem, error) {
			return s.store.Board(ctx), nil
		},
	)
}
