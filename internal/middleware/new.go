package middleware

import (
	"task-prioritizer/pkg/log"
)

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int // requests per client per minute; 0 disables limiting
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
