package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// ScheduleService is full CRUD over team calendar events. Listing degrades
// to an empty result; writes always report failure.
type ScheduleService struct {
	deps
}

func schedulePath(id string) string { return "/api/schedules/" + url.PathEscape(id) }

// List never fails because of the API; an unreachable API yields no events.
func (s *ScheduleService) List(ctx context.Context, q model.ScheduleQuery) ([]model.ScheduleEvent, error) {
	params := url.Values{}
	if q.Date != "" {
		params.Set("date", q.Date)
	}
	if q.Team != "" {
		params.Set("team", q.Team)
	}
	path := "/api/schedules"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return fallback.Call(ctx, s.guard, "schedules.list", fallback.Degrade,
		func(ctx context.Context) ([]model.ScheduleEvent, error) {
			var out []model.ScheduleEvent
			err := s.get(ctx, "schedules.list", path, &out)
			return out, err
		},
		func(context.Context) ([]model.ScheduleEvent, error) {
			return []model.ScheduleEvent{}, nil
		},
	)
}

// Create adds an event.
func (s *ScheduleService) Create(ctx context.Context, in model.ScheduleInput) (model.ScheduleEvent, error) {
	if err := validateSchedule(in); err != nil {
		return model.ScheduleEvent{}, err
	}
	return fallback.Call(ctx, s.guard, "schedules.create", fallback.Propagate,
		func(ctx context.Context) (model.ScheduleEvent, error) {
			var out model.ScheduleEvent
			err := s.post(ctx, "schedules.create", "/api/schedules", in, &out)
			return out, err
		}, nil)
}

// Update replaces an event.
func (s *ScheduleService) Update(ctx context.Context, id string, in model.ScheduleInput) (model.ScheduleEvent, error) {
	if err := validateSchedule(in); err != nil {
		return model.ScheduleEvent{}, err
	}
	return fallback.Call(ctx, s.guard, "schedules.update", fallback.Propagate,
		func(ctx context.Context) (model.ScheduleEvent, error) {
			var out model.ScheduleEvent
			err := s.put(ctx, "schedules.update", schedulePath(id), in, &out)
			return out, err
		}, nil)
}

// Delete removes an event.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	_, err := fallback.Call(ctx, s.guard, "schedules.delete", fallback.Propagate,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.api.Do(ctx, "schedules.delete", http.MethodDelete, schedulePath(id), nil, nil)
		}, nil)
	return err
}

// validateSchedule checks required fields. End before Start is accepted.
func validateSchedule(in model.ScheduleInput) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	case in.Start.IsZero() || in.End.IsZero():
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	case !in.Type.Valid():
		return fmt.Errorf("%w: type %q", ErrInvalidInput, in.Type)
	case !in.Team.Valid():
		return fmt.Errorf("%w: team %q", ErrInvalidInput, in.Team)
	}
	return nil
}
