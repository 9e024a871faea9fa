package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/okian/pulss/internal/adapters/upstream"
	model "github.com/okian/pulss/internal/domain/model"
	"github.com/okian/pulss/pkg/fallback"
	"github.com/okian/pulss/pkg/logger"
	"github.com/okian/pulss/pkg/metrics"
)

// DefaultChatSessionLimit bounds how many open and how many finished session
// ids a ChatService remembers. The least recently used id is dropped first.
const DefaultChatSessionLimit = 4096

// ChatService proxies the token-authenticated intake chat. It has no
// fallback: every failure is returned.
type ChatService struct {
	deps

	open   *lru.Cache[string, struct{}]
	closed *lru.Cache[string, struct{}]
}

func newChatService(d deps, limit int) *ChatService {
	if limit <= 0 {
		limit = DefaultChatSessionLimit
	}
	// lru.New only fails for a non-positive size.
	open, _ := lru.New[string, struct{}](limit)
	closed, _ := lru.New[string, struct{}](limit)
	return &ChatService{deps: d, open: open, closed: closed}
}

// StartFromLink opens a session from a shared link. A 404 from the API
// becomes ErrInvalidLink.
func (s *ChatService) StartFromLink(ctx context.Context, clientID, token string) (model.ChatStart, error) {
	if strings.TrimSpace(clientID) == "" || strings.TrimSpace(token) == "" {
		return model.ChatStart{}, fmt.Errorf("%w: client id and token are required", ErrInvalidInput)
	}
	path := "/api/pulss-chat/start-from-link/" + url.PathEscape(clientID) + "/" + url.PathEscape(token)
	start, err := fallback.Call(ctx, s.guard, "chat.start", fallback.Propagate,
		func(ctx context.Context) (model.ChatStart, error) {
			var out model.ChatStart
			err := s.post(ctx, "chat.start", path, nil, &out)
			return out, err
		}, nil)
	if errors.Is(err, upstream.ErrNotFound) {
		return model.ChatStart{}, fmt.Errorf("%w: %w", ErrInvalidLink, err)
	}
	if err != nil {
		return model.ChatStart{}, err
	}

	s.open.Add(start.SessionID, struct{}{})
	metrics.RecordChatSessionStarted()
	s.log.Info(ctx, "intake chat started", logger.String("clientID", clientID), logger.String("sessionID", start.SessionID))
	return start, nil
}

// SendMessage sends one user turn. Once a reply reports done the session
// rejects further input with ErrSessionClosed.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, text string) (model.ChatReply, error) {
	if strings.TrimSpace(sessionID) == "" {
		return model.ChatReply{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return model.ChatReply{}, fmt.Errorf("%w: message is empty", ErrInvalidInput)
	}
	if s.closed.Contains(sessionID) {
		return model.ChatReply{}, fmt.Errorf("session %q: %w", sessionID, ErrSessionClosed)
	}

	path := "/api/pulss-chat/sessions/" + url.PathEscape(sessionID) + "/messages"
	reply, err := fallback.Call(ctx, s.guard, "chat.send", fallback.Propagate,
		func(ctx context.Context) (model.ChatReply, error) {
			var out model.ChatReply
			err := s.post(ctx, "chat.send", path, model.ChatMessage{UserMessage: text}, &out)
			return out, err
		}, nil)
	if err != nil {
		return model.ChatReply{}, err
	}

	if reply.Done {
		s.open.Remove(sessionID)
		s.closed.Add(sessionID, struct{}{})
		metrics.RecordChatSessionCompleted()
		s.log.Info(ctx, "intake chat completed", logger.String("sessionID", sessionID))
	}
	return reply, nil
}

// OpenSessions counts sessions started here that have not reached done.
func (s *ChatService) OpenSessions() int {
	return s.open.Len()
}
