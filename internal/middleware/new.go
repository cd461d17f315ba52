package middleware

import (
	"context"

	"ticket-marketplace/internal/validation"
	"ticket-marketplace/pkg/log"
)

// StaffChecker resolves whether a wallet may manage events.
type StaffChecker interface {
	IsStaff(ctx context.Context, wallet string) (bool, error)
}

// Config holds the rate limiting settings.
type Config struct {
	RateLimitPerMin int
	MaxClients      int
}

type Middleware struct {
	l         log.Logger
	staff     StaffChecker
	validator *validation.Validator
	limiter   *rateLimiter
}

func New(l log.Logger, staff StaffChecker, cfg Config) Middleware {
	return Middleware{
		l:         l,
		staff:     staff,
		validator: validation.New(),
		limiter:   newRateLimiter(cfg.RateLimitPerMin, cfg.MaxClients),
	}
}
