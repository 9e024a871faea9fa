package service

import (
	"context"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// Placeholder draft produced while the API is unreachable.
const (
	OfflineSuggestionType  = "touchpoint_message"
	OfflineSuggestionTitle = "AIドラフト (オフライン)"
	OfflineSuggestionBody  = "サーバー未接続のためローカルドラフトを生成しました。次回撮影日案とトレンド提案を含めてください。"
)

// SuggestionService lists and generates AI message drafts. Every successful
// Generate appends exactly one suggestion.
type SuggestionService struct {
	deps
}

func (s *SuggestionService) List(ctx context.Context, clientID string) ([]model.AiSuggestion, error) {
	return fallback.Call(ctx, s.guard, "suggestions.list", fallback.Degrade,
		func(ctx context.Context) ([]model.AiSuggestion, error) {
			var out []model.AiSuggestion
			err := s.get(ctx, "suggestions.list", clientPath(clientID)+"/ai-suggestions", &out)
			return out, err
		},
		func(ctx context.Context) ([]model.AiSuggestion, error) {
			return s.store.Suggestions(ctx, clientID), nil
		},
	)
}

// Generate asks for a new draft. hint is passed through as the request body.
func (s *SuggestionService) Generate(ctx context.Context, clientID string, hint map[string]any) (model.AiSuggestion, error) {
	if hint == nil {
		hint = map[string]any{}
	}
	return fallback.Call(ctx, s.guard, "suggestions.generate", fallback.Degrade,
		func(ctx context.Context) (model.AiSuggestion, error) {
			var out model.AiSuggestion
			err := s.post(ctx, "suggestions.generate", clientPath(clientID)+"/ai-suggestions", hint, &out)
			return out, err
		},
		func(ctx context.Context) (model.AiSuggestion, error) {
			return s.store.AddSuggestion(ctx, model.AiSuggestion{
				ClientID:  clientID,
				Type:      OfflineSuggestionType,
				Title:     OfflineSuggestionTitle,
				Body:      OfflineSuggestionBody,
				Status:    model.SuggestionDraft,
				CreatedBy: "ai",
			}), nil
		},
	)
}
