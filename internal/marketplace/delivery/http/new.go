package http

import (
	"ticket-marketplace/internal/marketplace"
	"ticket-marketplace/pkg/log"
)

type handler struct {
	l  log.Logger
	uc marketplace.UseCase
}

// New creates a new HTTP handler for the marketplace domain.
func New(l log.Logger, uc marketplace.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
