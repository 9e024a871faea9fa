package service

import (
	"errors"

	repository "github.com/okian/pulss/internal/adapters/repository"
	"github.com/okian/pulss/internal/adapters/upstream"
)

// Sentinel kinds for dashboard service errors.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidLink   = errors.New("intake link is invalid or expired")
	ErrSessionClosed = errors.New("intake chat session is closed")
	ErrNotFound      = errors.New("not found")
)

// IsNotFound reports whether err means the addressed record does not exist,
// whether the answer came from the API or from fallback data.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidLink) ||
		errors.Is(err, upstream.ErrNotFound) ||
		errors.Is(err, repository.ErrNotFound) ||
		errors.Is(err, repository.ErrInvalidToken)
}
