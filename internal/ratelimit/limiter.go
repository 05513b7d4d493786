// Package ratelimit counts requests per key in fixed windows.
package ratelimit

import (
	"context"
	"time"
)

// Store keeps one counter per key. Increment starts a new window of the
// given length when the key has none, and returns the count after this hit
// together with the moment the window ends.
type Store interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
	Reset(ctx context.Context, key string) error
}

// Policy is one named limit. Keys of different policies never share a
// counter.
type Policy struct {
	Name    string
	Limit   int64
	Window  time.Duration
	Message string
}

var (
	APIPolicy = Policy{
		Name:    "api",
		Limit:   100,
		Window:  15 * time.Minute,
		Message: "Too many requests from this IP, please try again later.",
	}
	LeadPolicy = Policy{
		Name:    "leads",
		Limit:   5,
		Window:  15 * time.Minute,
		Message: "Too many lead submissions. Please try again in 15 minutes.",
	}
	LoginPolicy = Policy{
		Name:    "login",
		Limit:   5,
		Window:  15 * time.Minute,
		Message: "Too many login attempts. Please try again in 15 minutes.",
	}
)

// Decision is the outcome of one Check.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

type Limiter struct {
	Policy Policy
	store  Store
}

func New(policy Policy, store Store) *Limiter {
	return &Limiter{Policy: policy, store: store}
}

// Check records a hit for key and reports whether it is within the limit.
func (l *Limiter) Check(ctx context.Context, key string) (Decision, error) {
	count, resetAt, err := l.store.Increment(ctx, l.key(key), l.Policy.Window)
	if err != nil {
		return Decision{Allowed: true, Limit: l.Policy.Limit, Remaining: l.Policy.Limit}, err
	}

	remaining := l.Policy.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= l.Policy.Limit,
		Limit:     l.Policy.Limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, l.key(key))
}

func (l *Limiter) key(k string) string {
	return "ratelimit:" + l.Policy.Name + ":" + k
}
