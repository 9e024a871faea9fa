package service

import (
	"context"
	"net/url"
	"strconv"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/internal/domain/news"
	"github.com/okian/pulss/pkg/fallback"
)

// Limits applied when the caller gives none.
const (
	DefaultNewsLimit       = 30
	DefaultClientNewsLimit = 5
)

// NewsService reads the SNS industry news feed.
type NewsService struct {
	deps
	defaultLimit int
}

// Get returns news matching f. Live and fallback results pass through the
// same filter so both paths agree on semantics and truncation.
func (s *NewsService) Get(ctx context.Context, f model.NewsFilter) ([]model.SnsNewsItem, error) {
	params := url.Values{}
	if f.Platform != "" {
		params.Set("platform", f.Platform)
	}
	if f.Industry != "" {
		params.Set("industry", f.Industry)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	path := "/api/sns-news"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return fallback.Call(ctx, s.guard, "news.list", fallback.Degrade,
		func(ctx context.Context) ([]model.SnsNewsItem, error) {
			var out []model.SnsNewsItem
			if err := s.get(ctx, "news.list", path, &out); err != nil {
				return nil, err
			}
			return news.Apply(out, f), nil
		},
		func(ctx context.Context) ([]model.SnsNewsItem, error) {
			return news.Apply(s.store.News(ctx), f), nil
		},
	)
}

// GetDefault is Get with the configured default limit when f has none.
func (s *NewsService) GetDefault(ctx context.Context, f model.NewsFilter) ([]model.SnsNewsItem, error) {
	if f.Limit <= 0 {
		f.Limit = s.defaultLimit
	}
	return s.Get(ctx, f)
}

// ForClient returns news for the tag the client's industry classifies to.
func (s *NewsService) ForClient(ctx context.Context, c model.Client, limit int) ([]model.SnsNewsItem, error) {
	if limit <= 0 {
		limit = DefaultClientNewsLimit
	}
	return s.Get(ctx, model.NewsFilter{
		Industry: string(news.ClassifyIndustry(c.Industry)),
		Limit:    limit,
	})
}
