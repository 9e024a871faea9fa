package repository

import "errors"

// Sentinel kinds for fallback store errors.
var (
	ErrNotFound     = errors.New("record not found in fallback store")
	ErrInvalidToken = errors.New("unknown pulse link token")
)
