package repository

import "time"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the time source used for timestamps and seed dates.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how record ids and link tokens are produced.
func WithIDGenerator(next func() string) Option {
	return func(s *MemoryStore) {
		if next != nil {
			s.nextID = next
		}
	}
}

// WithSeed controls whether the built-in demo records are loaded.
func WithSeed(enabled bool) Option {
	return func(s *MemoryStore) { s.seed = enabled }
}

// WithPulseBaseURL sets the host used for placeholder intake links.
func WithPulseBaseURL(base string) Option {
	return func(s *MemoryStore) {
		if base != "" {
			s.pulseBaseURL = base
		}
	}
}
