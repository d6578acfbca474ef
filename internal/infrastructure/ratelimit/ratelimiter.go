package ratelimit

import "time"

// SubmitLimits caps how fast a single student can file feedback.
// A zero limit disables that window.
type SubmitLimits struct {
	PerMinute int
	PerHour   int
}

type RateLimiter interface {
	Allow(key string, limits SubmitLimits) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}
