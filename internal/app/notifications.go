package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
)

// NotificationService serves per-user in-app notifications.
type NotificationService struct {
	deps
}

func notificationsPath(user string) string {
	return "/api/notifications?" + url.Values{"user": {user}}.Encode()
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, user string) ([]model.Notification, error) {
	if strings.TrimSpace(user) == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "notifications.list", fallback.Degrade,
		func(ctx context.Context) ([]model.Notification, error) {
			var out []model.Notification
			err := s.get(ctx, "notifications.list", notificationsPath(user), &out)
			return out, err
		},
		func(ctx context.Context) ([]model.Notification, error) {
			return s.store.Notifications(ctx, user), nil
		},
	)
}

// Create addresses a notification to user. Title is required.
func (s *NotificationService) Create(ctx context.Context, user string, in model.NotificationInput) (model.Notification, error) {
	if strings.TrimSpace(user) == "" {
		return model.Notification{}, fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Notification{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return fallback.Call(ctx, s.guard, "notifications.create", fallback.Degrade,
		func(ctx context.Context) (model.Notification, error) {
			var out model.Notification
			err := s.post(ctx, "notifications.create", notificationsPath(user), in, &out)
			return out, err
		},
		func(ctx context.Context) (model.Notification, error) {
			return s.store.AddNotification(ctx, user, in), nil
		},
	)
}

// MarkRead stamps the notification as read. Marking twice keeps the first
// stamp in fallback data.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (model.Notification, error) {
	return fallback.Call(ctx, s.guard, "notifications.mark_read", fallback.Degrade,
		func(ctx context.Context) (model.Notification, error) {
			var out model.Notification
			err := s.post(ctx, "notifications.mark_read", "/api/notifications/"+url.PathEscape(id)+"/read", nil, &out)
			return out, err
		},
		func(ctx context.Context) (model.Notification, error) {
			n, err := s.store.MarkNotificationRead(ctx, id)
			if err != nil {
				return model.Notification{}, fmt.Errorf("mark notification read: %w", err)
			}
			return n, nil
		},
	)
}
