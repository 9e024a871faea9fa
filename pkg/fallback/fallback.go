// Package fallback runs a live call and, depending on policy, substitutes a
// local answer when it fails. There is a single attempt per call: no retry,
// backoff or circuit breaking.
package fallback

import (
	"context"

	"github.com/okian/pulss/pkg/logger"
	"github.com/okian/pulss/pkg/metrics"
)

// Policy decides what happens when the live call fails.
type Policy int

const (
	// Degrade answers from the fallback supplier and swallows the live error.
	Degrade Policy = iota
	// Propagate returns the live error to the caller.
	Propagate
)

func (p Policy) String() string {
	if p == Propagate {
		return "propagate"
	}
	return "degrade"
}

// Guard carries the logging and switches shared by every call.
type Guard struct {
	log      logger.Logger
	disabled bool
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets where fallback engagements are reported.
func WithLogger(l logger.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.log = l
		}
	}
}

// WithDisabled turns every Degrade into Propagate.
func WithDisabled(disabled bool) Option {
	return func(g *Guard) { g.disabled = disabled }
}

// NewGuard returns a Guard with a no-op logger unless one is supplied.
func NewGuard(opts ...Option) *Guard {
	g := &Guard{log: logger.Nop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Enabled reports whether Degrade policies are honored.
func (g *Guard) Enabled() bool { return g != nil && !g.disabled }

// Call runs live. On failure it returns the live error when policy is
// Propagate, the guard is disabled or ctx itself has ended; otherwise it
// returns whatever fallback produces. A nil fallback under Degrade yields the
// zero value.
func Call[T any](ctx context.Context, g *Guard, op string, policy Policy, live, fallback func(context.Context) (T, error)) (T, error) {
	out, err := live(ctx)
	if err == nil {
		return out, nil
	}

	if g == nil {
		g = NewGuard()
	}

	if policy == Propagate || !g.Enabled() || ctx.Err() != nil {
		metrics.RecordFallbackPropagated(op)
		g.log.Debug(ctx, "upstream failure propagated", logger.String("op", op), logger.Error(err))
		var zero T
		return zero, err
	}

	metrics.RecordFallbackEngaged(op)
	g.log.Warn(ctx, "upstream unavailable, serving fallback data",
		logger.String("op", op),
		logger.Error(err),
	)

	if fallback == nil {
		var zero T
		return zero, nil
	}
	return fallback(ctx)
}
