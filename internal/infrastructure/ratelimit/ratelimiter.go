package ratelimit

import (
	"context"
	"time"
)

// Rule allows Limit attempts per sliding Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	// Allow records an attempt for key and reports whether it fits the rule.
	Allow(ctx context.Context, key string) (bool, error)
	// Remaining returns how many attempts key has left in the current window.
	Remaining(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
